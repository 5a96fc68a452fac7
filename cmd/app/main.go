package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"fleetops/cmd"
	"fleetops/internal/adapters/in/stream"
	"fleetops/internal/adapters/out/postgres/courierrepo"
	"fleetops/internal/adapters/out/postgres/deliveryrepo"
	"fleetops/internal/jobs"

	fleetopshttp "fleetops/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	refreshJob := jobs.NewViewRefreshJob(app.Reconciler(), configs.ViewRefreshSpec, logger)
	if err := refreshJob.Start(); err != nil {
		log.Fatalf("failed to start view refresh job: %v", err)
	}
	defer refreshJob.Stop()

	consumer := mustCreateConsumer(configs, app, logger)
	if consumer != nil {
		consumerCtx, cancelConsumer := context.WithCancel(context.Background())
		defer cancelConsumer()
		go func() {
			if err := consumer.Run(consumerCtx); err != nil {
				logger.Error("notification consumer stopped", "error", err)
			}
		}()
		defer func() { _ = consumer.Close() }()
	}

	defer app.Reconciler().Close()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		MarketplaceBaseURL:     goDotEnvVariable("MARKETPLACE_BASE_URL"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:     goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaNotificationTopic: goDotEnvVariable("KAFKA_NOTIFICATION_TOPIC"),
		ViewRefreshSpec:        goDotEnvVariable("VIEW_REFRESH_SPEC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &courierrepo.CourierDTO{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return gormDB
}

func mustCreateConsumer(configs cmd.Config, app cmd.CompositionRoot, logger *slog.Logger) *stream.Consumer {
	var brokers []string
	if configs.KafkaHost != "" {
		brokers = strings.Split(configs.KafkaHost, ",")
	}

	consumer, err := stream.NewConsumer(
		brokers,
		configs.KafkaConsumerGroup,
		configs.KafkaNotificationTopic,
		app.Reconciler(),
		logger,
	)
	if err != nil {
		log.Fatalf("failed to create notification consumer: %v", err)
	}
	return consumer
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	server := fleetopshttp.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateRegisterCourierCommandHandler(),
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateRecordCollectionCommandHandler(),
		app.CreateMarkPickedUpCommandHandler(),
		app.CreateStartTransitCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateFailDeliveryCommandHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
		app.CreateSuggestCouriersQueryHandler(),
		app.CreateGetFleetSnapshotQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
