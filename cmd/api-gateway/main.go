package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-nexus-api/api/swagger"
	"github.com/noah-isme/campus-nexus-api/internal/handler"
	"github.com/noah-isme/campus-nexus-api/internal/middleware"
	"github.com/noah-isme/campus-nexus-api/internal/repository"
	"github.com/noah-isme/campus-nexus-api/internal/service"
	"github.com/noah-isme/campus-nexus-api/pkg/cache"
	"github.com/noah-isme/campus-nexus-api/pkg/config"
	"github.com/noah-isme/campus-nexus-api/pkg/jobs"
	"github.com/noah-isme/campus-nexus-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-nexus-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-nexus-api/pkg/middleware/requestid"
)

// @title Campus Nexus API
// @version 0.1.0
// @description Derivation core behind the student management dashboard
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := repository.Seed()
	validate := validator.New()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(client, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	courseRepo := repository.NewCourseRepository(db)
	lecturerRepo := repository.NewLecturerRepository(db)
	assistantRepo := repository.NewAssistantRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	loadBands := service.LoadBandsFromConfig(cfg.Workload)
	seatBands := service.SeatBandsFromConfig(cfg.Workload)

	courseSvc := service.NewCourseService(courseRepo, seatBands, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, courseRepo, validate, logr)
	lecturerSvc := service.NewLecturerService(lecturerRepo, courseRepo, loadBands, logr)
	assistantSvc := service.NewAssistantService(assistantRepo, loadBands, logr)
	feeSvc := service.NewFeeService(feeRepo, cfg.Fees.PartialFloor, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	exportSvc := service.NewExportService(feeRepo, paymentRepo, cfg.Fees.PartialFloor, logr, nil, nil)

	assignmentSvc := service.NewAssignmentService(
		assignmentRepo, courseRepo, lecturerRepo, assistantRepo, assistantRepo, validate, logr,
	).WithObserver(metricsSvc)

	paymentSvc := service.NewPaymentService(paymentRepo, feeRepo, nil, validate, logr)
	settlementQueue := jobs.NewQueue("settlement", paymentSvc.SettlementHandler(), jobs.QueueConfig{
		Workers:    cfg.Settlement.Workers,
		MaxRetries: cfg.Settlement.MaxRetries,
		RetryDelay: cfg.Settlement.RetryDelay,
		Logger:     logr,
	})
	settlementQueue.Start(ctx)
	defer settlementQueue.Stop()
	paymentSvc.AttachQueue(settlementQueue)

	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Courses:     courseSvc,
		Enrollments: enrollmentSvc,
		Fees:        feeSvc,
		Lecturers:   lecturerSvc,
		Assistants:  assistantSvc,
		Cache:       cacheSvc,
		Logger:      logr,
		CacheTTL:    cfg.Dashboard.CacheTTL,
	})

	courseHandler := handler.NewCourseHandler(courseSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, dashboardSvc)
	lecturerHandler := handler.NewLecturerHandler(lecturerSvc, assignmentSvc, dashboardSvc)
	assistantHandler := handler.NewAssistantHandler(assistantSvc, assignmentSvc, dashboardSvc)
	feeHandler := handler.NewFeeHandler(feeSvc, exportSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, exportSvc, dashboardSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, metricsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		courses := api.Group("/courses")
		courses.GET("", courseHandler.List)
		courses.GET("/summary", courseHandler.Summary)
		courses.GET("/:id", courseHandler.Get)

		enrollments := api.Group("/enrollments")
		enrollments.GET("", enrollmentHandler.List)
		enrollments.POST("", enrollmentHandler.Enroll)
		enrollments.DELETE("/:courseId", enrollmentHandler.Drop)

		lecturers := api.Group("/lecturers")
		lecturers.GET("", lecturerHandler.List)
		lecturers.GET("/summary", lecturerHandler.Summary)
		lecturers.GET("/:id", lecturerHandler.Get)
		lecturers.POST("/:id/assignments", lecturerHandler.Assign)
		lecturers.DELETE("/:id/assignments/:courseId", lecturerHandler.Unassign)

		assistants := api.Group("/assistants")
		assistants.GET("", assistantHandler.List)
		assistants.GET("/staffing", assistantHandler.Staffing)
		assistants.GET("/summary", assistantHandler.Summary)
		assistants.GET("/:id", assistantHandler.Get)
		assistants.POST("/:id/assignments", assistantHandler.Assign)
		assistants.DELETE("/:id/assignments/:courseId", assistantHandler.Unassign)

		fees := api.Group("/fees")
		fees.GET("", feeHandler.List)
		fees.GET("/summary", feeHandler.Summary)
		fees.GET("/statement", feeHandler.Statement)

		payments := api.Group("/payments")
		payments.GET("", paymentHandler.List)
		payments.POST("", paymentHandler.Record)
		payments.GET("/:id", paymentHandler.Get)
		payments.GET("/:id/receipt", paymentHandler.Receipt)

		students := api.Group("/students")
		students.GET("/:id", studentHandler.Get)
		students.PUT("/:id", studentHandler.Update)

		dashboard := api.Group("/dashboard")
		dashboard.GET("", dashboardHandler.Overview)
		dashboard.GET("/system", dashboardHandler.System)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
}
