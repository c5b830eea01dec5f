package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrConflict
		}
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, false, nil
	}
	if err != nil {
		return model.Order{}, false, err
	}
	return o, true, nil
}

// 注文×明細×商品を1本の結合で平坦に返す。
// 並びは注文日の降順のみ（第2ソートキーは付けない）。
func (r *OrderGormRepository) ListUserOrderRows(ctx context.Context, userID int64) ([]model.UserOrderRow, error) {
	var rows []model.UserOrderRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id          AS order_id,
			o.user_id     AS user_id,
			o.created_at  AS order_date,
			o.total_amount,
			o.status,
			oi.id         AS order_item_id,
			oi.quantity,
			oi.unit_price,
			oi.subtotal,
			p.id          AS product_id,
			p.name        AS product_name,
			p.description
		FROM orders o
		JOIN order_items oi ON o.id = oi.order_id
		JOIN products p ON oi.product_id = p.id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC`,
		userID,
	).Scan(&rows).Error
	if err != nil {
		return []model.UserOrderRow{}, err
	}
	return rows, nil
}

// (status, 注文日) ごとの集計。日付降順・status昇順。
// sum/min/max はnumericのまま、avgもnumeric平均で返す。
func (r *OrderGormRepository) ListStats(ctx context.Context) ([]model.OrderStatsRow, error) {
	var rows []model.OrderStatsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			DATE(created_at)  AS order_day,
			COUNT(*)          AS total_orders,
			SUM(total_amount) AS total_revenue,
			AVG(total_amount) AS avg_order_value,
			MIN(total_amount) AS min_order_value,
			MAX(total_amount) AS max_order_value
		FROM orders
		GROUP BY status, DATE(created_at)
		ORDER BY order_day DESC, status ASC`,
	).Scan(&rows).Error
	if err != nil {
		return []model.OrderStatsRow{}, err
	}
	return rows, nil
}
