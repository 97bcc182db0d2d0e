package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"pixgate"
	"pixgate/config"
	"pixgate/internal/application/safety"
	"pixgate/internal/application/sanitize"
	"pixgate/internal/application/usecase"
	"pixgate/internal/application/validation"
	"pixgate/internal/infrastructure/broker"
	"pixgate/internal/infrastructure/classifier"
	"pixgate/internal/infrastructure/database"
	"pixgate/internal/infrastructure/minio"
	"pixgate/internal/presentation/handler"
	"pixgate/internal/presentation/middleware"
	"pixgate/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running pixgate", "version", pixgate.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	assetWriter := database.NewAssetWriter(db)
	assetRetriever := database.NewAssetRetriever(db)
	assetLister := database.NewAssetLister(db)
	quotaReader := database.NewQuotaReader(db)
	membership := database.NewMembershipChecker(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover)

	gate := safety.NewGate(classifier.New(&cfg.Classifier), &cfg.Safety)

	uploader := usecase.NewUploader(
		membership,
		quotaReader,
		validation.New(&cfg.Validation),
		sanitize.New(&cfg.Sanitize),
		gate,
		minIOUploader,
		minIOUploader,
		minIORemover,
		assetWriter,
		brokerPublisher,
		&cfg.Uploader,
	)

	uploadHandler := handler.NewUploadHandler(uploader, cfg.Validation.MaxBytes)
	getHandler := handler.NewGetHandler(usecase.NewGetter(assetRetriever, minIOUploader))
	listHandler := handler.NewListHandler(usecase.NewLister(assetLister, minIOUploader))

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("12M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	auth := middleware.AuthMiddleware([]byte(cfg.Auth.JWTSecret))
	e.POST("/media", uploadHandler.Handle, auth)
	e.GET("/media", listHandler.Handle, auth)
	e.GET("/media/:id", getHandler.Handle, auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	_ = brokerClient.Close()
	_ = db.Stop()
}
