package usecase

import (
	"context"
	"errors"

	"app/internal/apperr"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

// 読み取り専用。トランザクションは張らず、クエリごとに接続を借りて返す。
type OrderQueryUsecase struct {
	orders repo.OrderRepository
	logger *zap.Logger
}

func NewOrderQueryUsecase(orders repo.OrderRepository, logger *zap.Logger) *OrderQueryUsecase {
	return &OrderQueryUsecase{orders: orders, logger: logger}
}

func (u *OrderQueryUsecase) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, apperr.New(apperr.KindValidation, "invalid order id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, apperr.New(apperr.KindNotFound, "order not found")
	}
	if err != nil {
		u.logger.Error("find order failed", zap.Error(err))
		return model.Order{}, apperr.Wrap(apperr.KindInfrastructure, "db error", err)
	}
	return o, nil
}

// GetUserOrders は注文×明細×商品の平坦な行を返す。明細がk件の注文はk行。
func (u *OrderQueryUsecase) GetUserOrders(ctx context.Context, userID int64) ([]model.UserOrderRow, error) {
	if userID <= 0 {
		return []model.UserOrderRow{}, apperr.New(apperr.KindValidation, "invalid user id")
	}

	rows, err := u.orders.ListUserOrderRows(ctx, userID)
	if err != nil {
		u.logger.Error("list user order rows failed", zap.Error(err))
		return []model.UserOrderRow{}, apperr.Wrap(apperr.KindInfrastructure, "db error", err)
	}
	return rows, nil
}

func (u *OrderQueryUsecase) GetOrderStats(ctx context.Context) ([]model.OrderStatsRow, error) {
	rows, err := u.orders.ListStats(ctx)
	if err != nil {
		u.logger.Error("list order stats failed", zap.Error(err))
		return []model.OrderStatsRow{}, apperr.Wrap(apperr.KindInfrastructure, "db error", err)
	}
	return rows, nil
}
