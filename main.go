// File: medcrm/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medcrm/config"
	"medcrm/cron"
	"medcrm/database"
	accountRepoPkg "medcrm/database/repository/account"
	agentRepoPkg "medcrm/database/repository/agent"
	appointmentRepoPkg "medcrm/database/repository/appointment"
	callLogRepoPkg "medcrm/database/repository/calllog"
	doctorRepoPkg "medcrm/database/repository/doctor"
	"medcrm/handlers"
	"medcrm/routes"
	"medcrm/services/account"
	"medcrm/services/agent"
	"medcrm/services/appointment"
	"medcrm/services/calllog"
	"medcrm/services/doctor"
	"medcrm/services/notification"
	"medcrm/services/storage"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	agRepo := agentRepoPkg.NewMongoAgentRepo()
	clRepo := callLogRepoPkg.NewMongoCallLogRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	acctRepo := accountRepoPkg.NewMongoAccountRepo()

	// services.
	notifier := notification.NewLogNotifier()

	doctorService := &doctor.DefaultDoctorService{
		Repo:         docRepo,
		Appointments: apptRepo,
	}

	var llm agent.PreviewClient
	if config.AppConfig.GeminiAPIKey != "" {
		llm = agent.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	}
	agentService, err := agent.NewDefaultAgentService(agRepo, llm)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize agent service: %v", err)
	}

	taskClient := cron.NewTaskClient()
	defer taskClient.Close()
	callLogService, err := calllog.NewDefaultCallLogService(
		clRepo,
		taskClient,
		calllog.NewSpeechTranscriber(),
		config.AppConfig.CallLogRetentionDays,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize call log service: %v", err)
	}

	appointmentService, err := appointment.NewDefaultAppointmentService(apptRepo, doctorService, notifier)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize appointment service: %v", err)
	}

	accountService, err := account.NewDefaultAccountService(acctRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize account service: %v", err)
	}

	// Media storage is optional; photo uploads fail with 503 when unset.
	var storageSvc storage.StorageService
	if config.AppConfig.CloudinaryURL != "" {
		storageSvc, err = storage.NewStorageService()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
		}
	}

	// handlers.
	doctorHandler := &handlers.DoctorHandler{DoctorService: doctorService}
	agentHandler := &handlers.AgentHandler{AgentService: agentService}
	callLogHandler := &handlers.CallLogHandler{CallLogService: callLogService}
	appointmentHandler := &handlers.AppointmentHandler{AppointmentService: appointmentService}
	accountHandler := &handlers.AccountHandler{AccountService: accountService}
	storageHandler := &handlers.StorageHandler{StorageSvc: storageSvc, DoctorService: doctorService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: acctRepo,

		// Auth endpoints.
		RegisterAccountHandler: accountHandler.RegisterAccountHandler,
		SignInHandler:          accountHandler.SignInHandler,
		SignOutHandler:         accountHandler.SignOutHandler,
		GetProfileHandler:      accountHandler.GetProfileHandler,
		UpdateProfileHandler:   accountHandler.UpdateProfileHandler,
		ChangePasswordHandler:  accountHandler.ChangePasswordHandler,
		DeleteAccountHandler:   accountHandler.DeleteAccountHandler,

		// Doctor roster endpoints.
		CreateDoctorHandler:  doctorHandler.CreateDoctorHandler,
		GetDoctorByIDHandler: doctorHandler.GetDoctorByIDHandler,
		ListDoctorsHandler:   doctorHandler.ListDoctorsHandler,
		UpdateDoctorHandler:  doctorHandler.UpdateDoctorHandler,
		DeleteDoctorHandler:  doctorHandler.DeleteDoctorHandler,
		FreeSlotsHandler:     doctorHandler.FreeSlotsHandler,
		UploadDoctorPhoto:    storageHandler.UploadDoctorPhotoHandler,

		// Doctor availability endpoints.
		ToggleDayHandler:      doctorHandler.ToggleDayHandler,
		AddSlotHandler:        doctorHandler.AddSlotHandler,
		UpdateSlotHandler:     doctorHandler.UpdateSlotHandler,
		RemoveSlotHandler:     doctorHandler.RemoveSlotHandler,
		AddOverrideHandler:    doctorHandler.AddOverrideHandler,
		UpdateOverrideHandler: doctorHandler.UpdateOverrideHandler,
		RemoveOverrideHandler: doctorHandler.RemoveOverrideHandler,

		// Voice agent endpoints.
		CreateAgentHandler:          agentHandler.CreateAgentHandler,
		GetAgentByIDHandler:         agentHandler.GetAgentByIDHandler,
		ListAgentsHandler:           agentHandler.ListAgentsHandler,
		UpdateAgentHandler:          agentHandler.UpdateAgentHandler,
		DeleteAgentHandler:          agentHandler.DeleteAgentHandler,
		ListScriptVariablesHandler:  agentHandler.ListScriptVariablesHandler,
		InsertScriptVariableHandler: agentHandler.InsertScriptVariableHandler,
		PreviewScriptHandler:        agentHandler.PreviewScriptHandler,

		// Call log endpoints.
		IngestCallLogHandler:  callLogHandler.IngestCallLogHandler,
		GetCallLogByIDHandler: callLogHandler.GetCallLogByIDHandler,
		ListCallLogsHandler:   callLogHandler.ListCallLogsHandler,
		DeleteCallLogHandler:  callLogHandler.DeleteCallLogHandler,

		// Appointment endpoints.
		CreateAppointmentHandler:       appointmentHandler.CreateAppointmentHandler,
		GetAppointmentByIDHandler:      appointmentHandler.GetAppointmentByIDHandler,
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,
		RescheduleAppointmentHandler:   appointmentHandler.RescheduleAppointmentHandler,
		DeleteAppointmentHandler:       appointmentHandler.DeleteAppointmentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitTranscriptionWorker(callLogService)
	cron.StartRetentionSweeper(callLogService)
	utils.StartHealthMonitor(database.MongoClient, utils.CacheClient, utils.AuthCacheClient)

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
