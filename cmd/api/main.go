package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cartlab/internal/config"
	"cartlab/internal/handler"
	"cartlab/internal/infra/db"
	infraRepo "cartlab/internal/infra/repository"
	"cartlab/internal/platform/logger"
	"cartlab/internal/server"
	"cartlab/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envが無くても環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Error("db connect failed", "driver", cfg.DBDriver, "dsn", cfg.PostgresDSN(), "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）→ Usecase → Handler
	todoRepo := infraRepo.NewTodoGormRepository(gormDB)
	todoUC := usecase.NewTodoUsecase(todoRepo, log.With("component", "todo"))
	todoH := handler.NewTodoHandler(todoUC)

	//カートはプロセス内に1つ（永続化しない）
	cart := usecase.NewCartAggregator(log.With("component", "cart"))
	cartH := handler.NewCartHandler(cart)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := server.New(cfg, log, todoH, cartH)
	if err := server.Start(ctx, e, cfg.Addr(), log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
