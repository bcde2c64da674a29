package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicdesk/config"
	"clinicdesk/cron"
	"clinicdesk/database"
	appointmentRepo "clinicdesk/database/repository/appointment"
	chatRepo "clinicdesk/database/repository/chat"
	clinicRepo "clinicdesk/database/repository/clinic"
	patientRepo "clinicdesk/database/repository/patient"
	"clinicdesk/handlers"
	"clinicdesk/middleware"
	"clinicdesk/routes"
	"clinicdesk/services/booking"
	"clinicdesk/services/calendar"
	chatSvc "clinicdesk/services/chat"
	"clinicdesk/services/scheduling"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatHistoryCache()

	// Calendar access degrades gracefully: with no client the engine
	// reports the calendar as unavailable instead of crashing.
	var calClient calendar.Client
	if gc, err := calendar.GetGoogleClient(); err != nil {
		logger.Sugar().Warnf("main: calendar client unavailable: %v", err)
	} else {
		calClient = gc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	clinics := clinicRepo.NewMongoClinicRepo()
	patients := patientRepo.NewMongoPatientRepo()
	chats := chatRepo.NewMongoChatRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	// reminder queue.
	cron.InitReminderWorker(chats)
	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()

	// services.
	engine := &scheduling.DefaultEngine{
		Calendar: calClient,
	}

	bookingService := &booking.DefaultBookingService{
		Engine:       engine,
		Appointments: appointments,
		Reminders:    reminderScheduler,
	}

	historyStore := chatSvc.NewRedisHistoryStore(utils.GetChatHistoryClient(), 30*time.Minute)
	chatService := &chatSvc.DefaultChatService{
		Clinics:   clinics,
		Patients:  patients,
		Chats:     chats,
		History:   historyStore,
		Booking:   bookingService,
		Assistant: chatSvc.NewGeminiAssistant(config.AppConfig.GeminiAPIKey),
	}

	chatHandler := handlers.NewChatHandler(chatService)
	clinicHandler := handlers.NewClinicHandler(clinics)
	appointmentHandler := handlers.NewAppointmentHandler(clinics, patients, appointments, bookingService)

	handlerBundle := handlers.NewHandlerBundle(chatHandler, clinicHandler, appointmentHandler)

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatHistoryClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
