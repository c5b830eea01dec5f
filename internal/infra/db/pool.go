package db

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
)

// プール枯渇（空き待ちタイムアウト・キャンセル）
var ErrPoolExhausted = errors.New("connection pool exhausted")

// Pool は共有gormハンドルに被せた有限プール。
// スロット数と実接続数（MaxOpenConns）を一致させるので、
// スロットを取れたトランザクションは必ず接続を専有できる。
type Pool struct {
	db             *gorm.DB
	slots          chan struct{}
	acquireTimeout time.Duration
}

func NewPool(gdb *gorm.DB, size int, acquireTimeout time.Duration) (*Pool, error) {
	if size <= 0 {
		size = 10
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(size)
	sqlDB.SetMaxIdleConns(size)

	slots := make(chan struct{}, size)
	for i := 0; i < size; i++ {
		slots <- struct{}{}
	}

	return &Pool{db: gdb, slots: slots, acquireTimeout: acquireTimeout}, nil
}

// Acquire は空きスロットを1つ専有する。
// 空きが出るまで待つが、acquireTimeoutか呼び出し側のキャンセルで打ち切る。
func (p *Pool) Acquire(ctx context.Context) (*Handle, error) {
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	select {
	case <-p.slots:
		return &Handle{pool: p}, nil
	case <-ctx.Done():
		return nil, ErrPoolExhausted
	}
}

// Available は現在の空きスロット数。
func (p *Pool) Available() int {
	return len(p.slots)
}

// Size はプール容量。
func (p *Pool) Size() int {
	return cap(p.slots)
}

// Handle はトランザクション1本分の専有スロット。
type Handle struct {
	pool     *Pool
	released atomic.Bool
}

// DB は共有gormハンドル。Beginするとdatabase/sql側で接続を1本専有する。
func (h *Handle) DB() *gorm.DB {
	return h.pool.db
}

// Release は何度呼ばれてもスロットを1回だけ返す。
func (h *Handle) Release() {
	if h.released.CompareAndSwap(false, true) {
		h.pool.slots <- struct{}{}
	}
}
