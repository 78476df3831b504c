package main

import (
	"context"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/delivery/http/controllers"
	"guidingpath-service/internal/app/delivery/http/middlewares"
	"guidingpath-service/internal/app/delivery/http/routers"
	"guidingpath-service/internal/app/drivers/database"
	"guidingpath-service/internal/app/drivers/logger"
	"guidingpath-service/internal/app/drivers/messaging"
	"guidingpath-service/internal/app/services/core/appointments"
	"guidingpath-service/internal/app/services/core/appraisals"
	"guidingpath-service/internal/app/services/core/availability"
	"guidingpath-service/internal/app/services/core/dashboard"
	"guidingpath-service/internal/app/services/guidingpath"
	"guidingpath-service/internal/app/services/shared/cache"
	"guidingpath-service/internal/app/services/shared/locker"
	"guidingpath-service/internal/app/services/shared/notification"
	"guidingpath-service/internal/app/services/shared/redis"
	"guidingpath-service/internal/app/services/shared/worker"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing dependencies", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	appCache := cache.NewCache(internalConfig.Cache.Driver, redisRepository)
	notificationService, err := notification.NewNotificationService(
		bootstrap.RabbitMQ,
		internalConfig.RabbitMQ.NotificationQueue,
		log,
	)
	if err != nil {
		return err
	}

	// Upstream Guiding Path API
	appointmentAPIClient := guidingpath.NewAppointmentAPIClient(internalConfig, log)
	requestAPIClient := guidingpath.NewRequestAPIClient(internalConfig, log)

	// Usecases
	availabilityUsecase := availability.NewAvailabilityUsecase(appointmentAPIClient, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentAPIClient,
		requestAPIClient,
		appCache,
		notificationService,
		internalConfig,
		log,
	)
	dashboardUsecase := dashboard.NewDashboardUsecase(appointmentAPIClient, appCache, internalConfig, log)
	evaluationCriteriaRepository := appraisals.NewEvaluationCriteriaMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appraisalUsecase := appraisals.NewAppraisalUsecase(evaluationCriteriaRepository, log)

	// Workers
	if internalConfig.Worker.TodayCacheEnabled {
		todayCacheWarmer := worker.NewTodayCacheWarmer(log, internalConfig, lockerService, appCache, appointmentUsecase)
		todayCacheWarmer.Start(context.Background())
		bootstrap.WorkerStop = todayCacheWarmer.Stop
	}

	// Delivery
	middlewares := middlewares.NewMiddlewares(log, internalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		controllers.NewHealthController(internalConfig),
		controllers.NewAvailabilityController(log, internalConfig, availabilityUsecase),
		controllers.NewAppointmentController(log, internalConfig, appointmentUsecase),
		controllers.NewDashboardController(log, internalConfig, dashboardUsecase),
		controllers.NewAppraisalController(log, internalConfig, appraisalUsecase),
	)
	return nil
}
