// File: letslink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"letslink/config"
	"letslink/database"
	availabilityRepoPkg "letslink/database/repository/availability"
	groupRepoPkg "letslink/database/repository/group"
	planRepoPkg "letslink/database/repository/plan"
	presetRepoPkg "letslink/database/repository/preset"
	userRepoPkg "letslink/database/repository/user"
	"letslink/handlers"
	"letslink/middleware"
	"letslink/routes"
	"letslink/services/group"
	"letslink/services/plan"
	"letslink/services/schedule"
	"letslink/services/user"
	"letslink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	groupRepo := groupRepoPkg.NewMongoGroupRepo()
	planRepo := planRepoPkg.NewMongoPlanRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	presetRepo := presetRepoPkg.NewMongoPresetRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	groupService := &group.DefaultGroupService{
		Repo:     groupRepo,
		UserRepo: userRepo,
	}
	planService := &plan.DefaultPlanService{
		Repo:      planRepo,
		GroupRepo: groupRepo,
	}
	scheduleService := &schedule.DefaultScheduleService{
		AvailabilityRepo: availabilityRepo,
		PlanRepo:         planRepo,
		GroupRepo:        groupRepo,
		PresetRepo:       presetRepo,
	}

	userHandler := &handlers.UserHandler{UserService: userService}
	groupHandler := &handlers.GroupHandler{GroupService: groupService}
	planHandler := &handlers.PlanHandler{PlanService: planService}
	availabilityHandler := &handlers.AvailabilityHandler{
		ScheduleService: scheduleService,
		GroupService:    groupService,
		UserService:     userService,
	}
	presetHandler := &handlers.PresetHandler{ScheduleService: scheduleService}
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService, userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Account endpoints.
		RegisterHandler:       userHandler.RegisterHandler,
		SignInHandler:         userHandler.SignInHandler,
		SignOutHandler:        userHandler.SignOutHandler,
		GetMeHandler:          userHandler.GetMeHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		UpdatePasswordHandler: userHandler.UpdatePasswordHandler,
		DeleteUserHandler:     userHandler.DeleteUserHandler,
		UploadAvatarHandler:   storageHandler.UploadAvatarHandler,

		// Group endpoints.
		CreateGroupHandler:  groupHandler.CreateGroupHandler,
		ListGroupsHandler:   groupHandler.ListGroupsHandler,
		GetGroupHandler:     groupHandler.GetGroupHandler,
		LeaveGroupHandler:   groupHandler.LeaveGroupHandler,
		CreateInviteHandler: groupHandler.CreateInviteHandler,
		JoinByInviteHandler: groupHandler.JoinByInviteHandler,

		// Plan endpoints.
		CreatePlanHandler: planHandler.CreatePlanHandler,
		ListPlansHandler:  planHandler.ListPlansHandler,
		GetPlanHandler:    planHandler.GetPlanHandler,
		DeletePlanHandler: planHandler.DeletePlanHandler,

		// Availability endpoints.
		SubmitAvailabilityHandler: availabilityHandler.SubmitHandler,
		GetMyRecordsHandler:       availabilityHandler.GetMyRecordsHandler,
		UpdateRecordHandler:       availabilityHandler.UpdateRecordHandler,
		DeleteRecordHandler:       availabilityHandler.DeleteRecordHandler,
		GetChartHandler:           availabilityHandler.GetChartHandler,
		GetTimelineHandler:        availabilityHandler.GetTimelineHandler,

		// Preset endpoints.
		ListPresetsHandler:  presetHandler.ListPresetsHandler,
		CreatePresetHandler: presetHandler.CreatePresetHandler,
		UpdatePresetHandler: presetHandler.UpdatePresetHandler,
		DeletePresetHandler: presetHandler.DeletePresetHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
