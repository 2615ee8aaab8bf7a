package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalhub-service/internal/app/config"
	"legalhub-service/internal/app/delivery/http/middlewares"
	"legalhub-service/internal/app/delivery/http/routers"
	"legalhub-service/internal/app/drivers/database"
	"legalhub-service/internal/app/drivers/logger"
	"legalhub-service/internal/app/drivers/messaging"
	"legalhub-service/internal/app/services/core/appointments"
	"legalhub-service/internal/app/services/core/courses"
	"legalhub-service/internal/app/services/core/jobs"
	"legalhub-service/internal/app/services/core/stats"
	"legalhub-service/internal/app/services/core/users"
	"legalhub-service/internal/app/services/core/youtube"
	"legalhub-service/internal/app/services/shared/locker"
	"legalhub-service/internal/app/services/shared/notifications"
	"legalhub-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB, err := database.NewMongoDBDriver(driverConfig.MongoDB)
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}

	redisClient, err := database.NewRedisDriver(driverConfig.Redis)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}

	rabbitMQ, err := messaging.NewRabbitMQDriver(driverConfig.RabbitMQ)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:          chiRouter,
		MongoDB:         mongoDB,
		Redis:           redisClient,
		RabbitMQChannel: rabbitMQ.Channel,
		ZapLogger:       zapLogger,
		LogrusLogger:    log,
		DriverConfig:    driverConfig,
		InternalConfig:  internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := mongoDB.Disconnect(shutdownCtx); err != nil {
		log.Errorf("Error disconnecting MongoDB: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Errorf("Error closing Redis: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.ZapLogger)

	notificationPublisher, err := notifications.NewNotificationQueueService(
		bootstrap.RabbitMQChannel,
		bootstrap.InternalConfig.App.RabbitMQNotificationQueue,
		bootstrap.ZapLogger,
	)
	if err != nil {
		bootstrap.LogrusLogger.Fatalf("Error setting up notification queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := appointmentMongoRepository.EnsureIndexes(indexCtx); err != nil {
		bootstrap.LogrusLogger.Fatalf("Error creating appointment indexes: %v", err)
	}
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		lockService,
		notificationPublisher,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	// Jobs
	jobMongoRepository := jobs.NewJobMongoRepository(bootstrap.MongoDB, dbName)
	jobUsecase := jobs.NewJobUsecase(jobMongoRepository, bootstrap.ZapLogger)
	jobController := jobs.NewJobController(bootstrap.ZapLogger, jobUsecase)

	// Courses
	courseMongoRepository := courses.NewCourseMongoRepository(bootstrap.MongoDB, dbName)
	courseUsecase := courses.NewCourseUsecase(courseMongoRepository, bootstrap.ZapLogger)
	courseController := courses.NewCourseController(bootstrap.ZapLogger, courseUsecase)

	// Users
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	savedJobMongoRepository := users.NewSavedJobMongoRepository(bootstrap.MongoDB, dbName)
	enrollmentMongoRepository := users.NewEnrollmentMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(
		userMongoRepository,
		savedJobMongoRepository,
		enrollmentMongoRepository,
		jobMongoRepository,
		courseMongoRepository,
		appointmentMongoRepository,
		bootstrap.ZapLogger,
	)
	userController := users.NewUserController(bootstrap.ZapLogger, userUsecase)

	// Stats
	statsMongoRepository := stats.NewStatsMongoRepository(bootstrap.MongoDB, dbName)
	statsUsecase := stats.NewStatsUsecase(statsMongoRepository, redisRepository, bootstrap.ZapLogger)
	statsController := stats.NewStatsController(bootstrap.ZapLogger, statsUsecase)

	// Youtube
	youtubeFeedClient := youtube.NewYoutubeFeedClient(
		time.Duration(bootstrap.InternalConfig.Youtube.FetchTimeoutInSecond) * time.Second,
	)
	youtubeUsecase := youtube.NewYoutubeUsecase(
		youtubeFeedClient,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	youtubeController := youtube.NewYoutubeController(bootstrap.ZapLogger, youtubeUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentController,
		jobController,
		courseController,
		userController,
		statsController,
		youtubeController,
	)
}
