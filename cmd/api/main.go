package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vedacare/cmd/internal/config"
	"vedacare/cmd/internal/domain/sqlite"
	"vedacare/cmd/internal/domain/sqlite/repository"
	s3client "vedacare/cmd/internal/integration/aws/s3"
	"vedacare/cmd/internal/routes"
	"vedacare/cmd/internal/service"
	"vedacare/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	validate := validator.New()
	registerValidators(validate)

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	// Photo host client
	uploader, err := s3client.InitClient(cfg.S3Bucket, cfg.PhotoBaseURL, cfg.UploadTimeout)
	if err != nil {
		log.Fatal("failed to initialize photo host client: ", err)
	}

	// Getting repositories
	userRepo := repository.NewUserRepository(db)
	treatmentRepo := repository.NewTreatmentRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate, uploader, cfg.JWTSecret, cfg.TokenTTL, cfg.MaxUploadBytes)
	treatmentService := service.NewTreatmentService(treatmentRepo, validate)
	apptService := service.NewAppointmentService(apptRepo, validate)

	// Getting routes
	userRoutes := routes.NewUserDefault(userService, cfg.MaxUploadBytes)
	treatmentRoutes := routes.NewTreatmentDefault(treatmentService)
	apptRoutes := routes.NewAppointmentDefault(apptService)

	e := echo.New()
	e.Use(middleware.CORS())

	// Treatments
	e.GET("/api/treatments", treatmentRoutes.GetTreatments)
	e.POST("/api/treatments", treatmentRoutes.CreateTreatment)
	e.PUT("/api/treatments/:id", treatmentRoutes.UpdateTreatment)

	// Appointments
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.PATCH("/api/appointments/:id", apptRoutes.UpdateStatus)

	// Users
	e.POST("/api/register", userRoutes.Register)
	e.POST("/api/login", userRoutes.Login)

	requireAuth := routes.RequireAuth(cfg.JWTSecret)
	e.GET("/api/profile", userRoutes.GetProfile, requireAuth)
	e.POST("/api/upload-profile-photo", userRoutes.UploadProfilePhoto, requireAuth)

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	go func() {
		err := e.Start(fmt.Sprintf(":%d", cfg.Port))
		if err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("calendardate", validators.IsCalendarDate)
	_ = validate.RegisterValidation("clocktime", validators.IsClockTime)
}
