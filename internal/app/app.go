package app

import (
	"context"
	"gymfit/internal/config"
	"gymfit/internal/db"
	"gymfit/internal/handlers"
	"gymfit/internal/repository"
	"gymfit/internal/routes"
	"gymfit/internal/services"
	"time"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}
	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	trainerRepo := repository.NewTrainerRepository(conn)
	slotRepo := repository.NewTimeSlotRepository(conn)
	appointmentRepo := repository.NewAppointmentRepository(conn)
	subscriptionRepo := repository.NewSubscriptionRepository(conn)
	planRepo := repository.NewPlanRepository(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	trainerService := services.NewTrainerService(trainerRepo, userRepo, slotRepo, cfg)
	scheduleService := services.NewScheduleService(appointmentRepo, slotRepo, trainerRepo, userRepo, cfg)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo, planRepo)
	planService := services.NewPlanService(planRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	trainerHandler := handlers.NewTrainerHandler(trainerService)
	timeSlotHandler := handlers.NewTimeSlotHandler(scheduleService)
	appointmentHandler := handlers.NewAppointmentHandler(scheduleService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	planHandler := handlers.NewPlanHandler(planService)

	_ = subscriptionRepo.RefreshActiveFlags(context.Background())

	// Периодическая актуализация флагов активности абонементов
	StartSubscriptionRefresher(subscriptionRepo)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, trainerHandler, timeSlotHandler, appointmentHandler, subscriptionHandler, planHandler)

	return router, nil
}

func StartSubscriptionRefresher(repo *repository.SubscriptionRepository) {
	t := time.NewTicker(1 * time.Hour)
	go func() {
		for range t.C {
			_ = repo.RefreshActiveFlags(context.Background())
		}
	}()
}
