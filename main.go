package main

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/sirupsen/logrus"

	"github.com/itschibits/sharebnb-api/config"
	"github.com/itschibits/sharebnb-api/routes"
	"github.com/itschibits/sharebnb-api/services"
	"github.com/itschibits/sharebnb-api/storage"
	"github.com/itschibits/sharebnb-api/utils"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	db, err := storage.NewDB(cfg.DBConnectionString)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}

	uploader, err := storage.NewObjectStorage(cfg.ObjectStorage)
	if err != nil {
		logger.WithError(err).Fatal("object storage client failed")
	}
	if err := uploader.EnsureBucket(context.Background()); err != nil {
		logger.WithError(err).Fatal("object storage bucket setup failed")
	}

	api := &routes.API{
		DB:       db,
		Uploader: uploader,
		Cache:    storage.NewListingCache(cfg.RedisURL, 30*time.Second),
		Secret:   cfg.AccessTokenSecret,
		Logger:   logger,
	}
	if cfg.RabbitURL != "" {
		api.Events = services.NewQueuePublisher(cfg.RabbitURL, logger)
	}

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(utils.RequestLogger(logger))

	api.RegisterRoutes(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
