package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env はあれば読む（本番は環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
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

	//有限プール（書き込みトランザクションが接続を専有する）
	pool, err := db.NewPool(gormDB, cfg.PoolSize, cfg.AcquireTimeout)
	if err != nil {
		logger.Fatal("pool init failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(pool)

	//Usecase生成
	userUC := usecase.NewUserUsecase(userRepo, logger)
	orderUC := usecase.NewOrderUsecase(txManager, logger)
	orderQueryUC := usecase.NewOrderQueryUsecase(orderRepo, logger)

	//Handler生成
	userH := handler.NewUserHandler(userUC)
	orderH := handler.NewOrderHandler(orderUC, orderQueryUC)

	//Server起動
	e := server.New(logger, userH, orderH)

	addr := ":" + cfg.Port
	if cfg.Port != "" && cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	logger.Info("starting server", zap.String("addr", addr), zap.Int("pool_size", pool.Size()))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
