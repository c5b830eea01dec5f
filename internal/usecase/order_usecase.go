package usecase

import (
	"context"
	"errors"

	"app/internal/apperr"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	logger *zap.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, logger *zap.Logger) *OrderUsecase {
	return &OrderUsecase{tx: tx, logger: logger}
}

type CreateOrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type CreateOrderInput struct {
	UserID          int64
	Items           []CreateOrderItemInput
	ShippingAddress *string
	//任意。付けると同じキーの再送が同じ注文を返す
	IdempotencyKey string
}

type CreateOrderOutput struct {
	OrderID     int64           `json:"order_id"`
	UserID      int64           `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
}

// CreateOrder は注文と明細を1トランザクションで作る。
// 価格は明細ごとに1回だけ読み、合計計算とスナップショットの両方に同じ値を使う。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	//バリデーションはストアに触る前に終わらせる
	if in.UserID <= 0 {
		return CreateOrderOutput{}, apperr.New(apperr.KindValidation, "user_id and items are required")
	}
	if len(in.Items) == 0 {
		return CreateOrderOutput{}, apperr.New(apperr.KindValidation, "user_id and items are required")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return CreateOrderOutput{}, apperr.New(apperr.KindValidation, "invalid product_id")
		}
		if it.Quantity <= 0 {
			return CreateOrderOutput{}, apperr.New(apperr.KindValidation, "quantity must be positive")
		}
	}

	var out CreateOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果
		if in.IdempotencyKey != "" {
			existing, found, err := r.Orders().FindByIdempotencyKey(ctx, in.UserID, in.IdempotencyKey)
			if err != nil {
				return u.dbError("find by idempotency key failed", err)
			}
			if found {
				out = toCreateOrderOutput(existing)
				return nil
			}
		}

		//価格を1回だけ読んでスナップショットを作る
		items := make([]model.OrderItem, 0, len(in.Items))
		total := decimal.Zero

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return apperr.New(apperr.KindReference, "product not found")
			}
			if err != nil {
				return u.dbError("find product failed", err)
			}

			subtotal := p.Price.Mul(decimal.NewFromInt(it.Quantity))
			items = append(items, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}

		// 注文作成
		order := model.Order{
			UserID:          in.UserID,
			Status:          model.OrderStatusPending,
			TotalAmount:     total,
			ShippingAddress: in.ShippingAddress,
		}
		if in.IdempotencyKey != "" {
			key := in.IdempotencyKey
			order.IdempotencyKey = &key
		}

		orderID, err := r.Orders().Create(ctx, order)
		if errors.Is(err, repo.ErrConflict) {
			//同じキーが同時に入った等。もう一回検索して同じ結果を返す
			if in.IdempotencyKey != "" {
				ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, in.UserID, in.IdempotencyKey)
				if err2 == nil && found2 {
					out = toCreateOrderOutput(ex2)
					return nil
				}
			}
			return apperr.New(apperr.KindConflict, "duplicate order")
		}
		if err != nil {
			return u.dbError("create order failed", err)
		}

		//明細は手順2で取った価格をそのまま使う。商品は読み直さない
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return u.dbError("create order items failed", err)
		}

		out = CreateOrderOutput{
			OrderID:     orderID,
			UserID:      in.UserID,
			TotalAmount: total,
			Status:      "created",
		}
		return nil
	})

	if err != nil {
		return CreateOrderOutput{}, err
	}
	return out, nil
}

// 内部詳細はログに残し、呼び出し側にはサニタイズ済みのエラーを返す
func (u *OrderUsecase) dbError(msg string, err error) error {
	u.logger.Error(msg, zap.Error(err))
	return apperr.Wrap(apperr.KindInfrastructure, "db error", err)
}

func toCreateOrderOutput(o model.Order) CreateOrderOutput {
	return CreateOrderOutput{
		OrderID:     o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Status:      "created",
	}
}
