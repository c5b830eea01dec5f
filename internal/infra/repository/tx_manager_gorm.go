package repository

import (
	"context"

	"app/internal/apperr"
	"app/internal/infra/db"
	repo "app/internal/repository"
)

type txReposGorm struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposGorm) Products() repo.ProductRepository     { return r.products }

type TxManagerGorm struct {
	pool *db.Pool
}

func NewTxManagerGorm(pool *db.Pool) *TxManagerGorm {
	return &TxManagerGorm{pool: pool}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	h, err := tm.pool.Acquire(ctx)
	if err != nil {
		return apperr.Wrap(apperr.KindResourceExhausted, "connection pool exhausted", err)
	}
	//成功・業務エラー・障害、どの出口でも必ずプールへ返す
	defer h.Release()

	tx := h.DB().WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperr.Wrap(apperr.KindInfrastructure, "begin transaction failed", tx.Error)
	}

	//fnがpanicしてもtxを開いたままにしない
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	//repoはtxを持ったDBで作り直す
	r := &txReposGorm{
		orders:     NewOrderGormRepository(tx),
		orderItems: NewOrderItemGormRepository(tx),
		products:   NewProductGormRepository(tx),
	}

	if err := fn(r); err != nil {
		tx.Rollback()
		return err
	}

	//キャンセル済みならコミットせずに巻き戻す
	if err := ctx.Err(); err != nil {
		tx.Rollback()
		return apperr.Wrap(apperr.KindInfrastructure, "request cancelled", err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return apperr.Wrap(apperr.KindInfrastructure, "commit failed", err)
	}
	return nil
}
