package main

import (
	"context"
	"fmt"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 負荷試験用の初期データ投入。
// ユーザー・商品を入れて、商品ごとの現在価格から注文を1件作る。
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(gormDB)
	products := infraRepo.NewProductGormRepository(gormDB)
	orders := infraRepo.NewOrderGormRepository(gormDB)
	orderItems := infraRepo.NewOrderItemGormRepository(gormDB)

	for i := 1; i <= 5; i++ {
		u := model.User{
			Username: fmt.Sprintf("seed_user_%d", i),
			Email:    fmt.Sprintf("seed_user_%d@example.com", i),
		}
		if err := users.Create(ctx, &u); err != nil {
			//再実行時の重複は無視
			logger.Warn("seed user skipped", zap.String("username", u.Username), zap.Error(err))
			continue
		}
		logger.Info("seed user created", zap.Int64("user_id", u.ID))
	}

	prices := []string{"19.99", "5.50", "120.00"}
	created := make([]model.Product, 0, len(prices))
	for i, price := range prices {
		p, err := products.Create(ctx, model.Product{
			Name:        fmt.Sprintf("Seed Product %d", i+1),
			Description: "seed data",
			Price:       decimal.RequireFromString(price),
		})
		if err != nil {
			logger.Fatal("seed product failed", zap.Error(err))
		}
		created = append(created, p)
	}

	//先頭ユーザーの注文を1件。価格はこの時点のスナップショット
	first, err := users.FindByID(ctx, 1)
	if err != nil {
		logger.Fatal("seed user lookup failed", zap.Error(err))
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(created))
	for _, p := range created {
		qty := int64(2)
		subtotal := p.Price.Mul(decimal.NewFromInt(qty))
		items = append(items, model.OrderItem{
			ProductID: p.ID,
			Quantity:  qty,
			UnitPrice: p.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	orderID, err := orders.Create(ctx, model.Order{
		UserID:      first.ID,
		Status:      model.OrderStatusPending,
		TotalAmount: total,
	})
	if err != nil {
		logger.Fatal("seed order failed", zap.Error(err))
	}
	if err := orderItems.CreateBulk(ctx, orderID, items); err != nil {
		logger.Fatal("seed order items failed", zap.Error(err))
	}

	logger.Info("seed done", zap.Int64("order_id", orderID), zap.String("total", total.String()))
}
