package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/codetutors/code_tutors/internal/app"
	"github.com/codetutors/code_tutors/internal/config"
	"github.com/codetutors/code_tutors/internal/controller"
	"github.com/codetutors/code_tutors/internal/notification"
	"github.com/codetutors/code_tutors/internal/repository"
	"github.com/codetutors/code_tutors/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	tutorRepo := repository.NewTutorRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool, bookingRepo)
	studentRepo := repository.NewStudentRepository(pool)

	notifier, err := notification.NewTelegramNotifier(cfg.TelegramToken, logger)
	if err != nil {
		logger.Fatal("Failed to create notifier", zap.Error(err))
	}

	bookingService := service.NewBookingService(bookingRepo, studentRepo, logger)
	assignmentService := service.NewAssignmentService(
		bookingRepo, tutorRepo, lessonRepo, studentRepo, notifier, logger)

	handler := controller.NewHandler(bookingService, assignmentService, tutorRepo, studentRepo, lessonRepo, logger)

	srv := fiber.New(fiber.Config{AppName: "code_tutors"})
	controller.RegisterRoutes(srv, handler)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
}
