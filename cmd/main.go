package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-amendment-service/internal/app"
	"order-amendment-service/internal/config"
	"order-amendment-service/internal/gateway"
	"order-amendment-service/internal/handler"
	"order-amendment-service/internal/notify"
	"order-amendment-service/internal/postgres"
	"order-amendment-service/internal/repo"
	"order-amendment-service/internal/service"
	"order-amendment-service/pkg/sessions"
	"order-amendment-service/pkg/tokens"
	"order-amendment-service/pkg/trm"

	_ "order-amendment-service/docs"

	"github.com/joho/godotenv"
)

// @title           Order Amendment Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	payments := gateway.NewClient(conf.Gateway)
	orderRepo := repo.NewPostgresRepo(db, payments)
	txManager := trm.NewManager(db)

	sessionStore := sessions.New(conf.Session.Capacity, conf.Session.TTL)
	tokenStore := tokens.New(conf.Session.TokenTTL)
	mailer := notify.NewMailer(logger, conf.SMTP)

	eligibility := service.NewEligibility(conf.Policy, time.Now)
	editService := service.NewEditService(logger, orderRepo, sessionStore, tokenStore, eligibility, conf.Policy)
	cartService := service.NewCartService(logger, orderRepo, editService, eligibility)
	reconciler := service.NewReconciler(logger, txManager, orderRepo, mailer)
	transitionService := service.NewTransitionService(logger, txManager, orderRepo, editService, reconciler)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, transitionService)
	httpHandler := handler.NewHTTPHandler(logger, editService, cartService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(sessionStore, tokenStore)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
