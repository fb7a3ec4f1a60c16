package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/meetboard/meeting-booking-backend/api"
	"github.com/meetboard/meeting-booking-backend/attachment"
	"github.com/meetboard/meeting-booking-backend/auth"
	"github.com/meetboard/meeting-booking-backend/blob"
	bk "github.com/meetboard/meeting-booking-backend/booking"
	"github.com/meetboard/meeting-booking-backend/config"
	"github.com/meetboard/meeting-booking-backend/database"
	"github.com/meetboard/meeting-booking-backend/notify"
	"github.com/meetboard/meeting-booking-backend/record"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Fatal("unable to connect to database", zap.Error(err))
	}

	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	logger.Info("database ready")

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenIssuer, cfg.ResponseTokenTTL)
	gateway := notify.NewClient(cfg.NotifyBaseURL, cfg.NotifyAPIKey)
	blobStore := blob.NewDiskStore(cfg.BlobDir)

	bookingRepo := bk.NewRepository(pool)
	groupRepo := bk.NewGroupRepo(pool)
	recordRepo := record.NewRepository(pool)
	attachmentRepo := attachment.NewRepository(pool)

	bookingService := bk.NewService(bk.ServiceDeps{
		Repo:          bookingRepo,
		Groups:        groupRepo,
		Records:       recordRepo,
		Gateway:       gateway,
		Tokens:        tokens,
		Clock:         bk.NewClock(cfg.ScheduleUTCOffsetMinutes),
		PublicBaseURL: cfg.PublicBaseURL,
		Logger:        logger.Named("booking"),
	})

	attachmentService := attachment.NewService(
		attachmentRepo, blobStore, recordRepo, bookingService, cfg.AttachmentRetention, logger.Named("attachment"))

	sweeper := bk.NewSweeper(bk.SweeperDeps{
		Repo:        bookingRepo,
		Groups:      groupRepo,
		Gateway:     gateway,
		Attachments: attachmentService,
		Logger:      logger.Named("sweeper"),
		Interval:    cfg.ReminderInterval,
		Lookahead:   cfg.ReminderLookahead,
		ExpiryGrace: cfg.BookingExpiryGrace,
	})

	sweeper.Start(ctx)
	defer sweeper.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	authed := api.Auth(tokens)

	bookingHandler := api.NewBookingHandler(bookingService, attachmentService, tokens)
	bookingHandler.RegisterPublic(r.Group("/api/v1/bookings"))

	bookingRouter := r.Group("/api/v1/bookings")
	bookingRouter.Use(authed)
	bookingHandler.Register(bookingRouter)

	attachmentRouter := r.Group("/api/v1/attachments")
	attachmentRouter.Use(authed)
	api.NewAttachmentHandler(attachmentService).Register(attachmentRouter)

	// Manual sweep trigger for operators, outside the periodic schedule.
	adminRouter := r.Group("/api/v1/admin")
	adminRouter.Use(authed, api.OverseerOnly())
	adminRouter.POST("/sweep", func(c *gin.Context) {
		sweeper.Sweep(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "sweep completed"})
	})

	logger.Info("listening", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var zapConfig zap.Config

	if env == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapConfig.OutputPaths = []string{"stdout"}

	logger, err := zapConfig.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}
