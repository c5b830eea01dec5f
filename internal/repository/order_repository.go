package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	//検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error)

	//orders/order_items/products の結合。注文日の降順、明細N件でN行
	ListUserOrderRows(ctx context.Context, userID int64) ([]model.UserOrderRow, error)
	// (status, 注文日) 集計。日付降順・status昇順
	ListStats(ctx context.Context) ([]model.OrderStatsRow, error)
}
