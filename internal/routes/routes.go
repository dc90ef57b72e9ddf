package routes

import (
	"gymfit/internal/handlers"
	"gymfit/internal/middleware"
	"gymfit/internal/models"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	trainerHandler *handlers.TrainerHandler,
	timeSlotHandler *handlers.TimeSlotHandler,
	appointmentHandler *handlers.AppointmentHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	planHandler *handlers.PlanHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	api.HandleFunc("/trainers", trainerHandler.GetTrainers).Methods("GET")
	api.HandleFunc("/trainers/{id:[0-9]+}", trainerHandler.GetTrainer).Methods("GET")

	api.HandleFunc("/plans", planHandler.GetPlans).Methods("GET")
	api.HandleFunc("/plans/{id:[0-9]+}", planHandler.GetPlan).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth)
	protected.Use(middleware.AdminFastLane)

	protected.HandleFunc("/me", authHandler.Me).Methods("GET")

	protected.HandleFunc("/timeslots/trainer/{trainerId:[0-9]+}", timeSlotHandler.GetTrainerSlots).Methods("GET")
	protected.HandleFunc("/timeslots/available/{trainerId:[0-9]+}/{date}", timeSlotHandler.GetAvailableHours).Methods("GET")
	protected.HandleFunc("/timeslots/check/{trainerId:[0-9]+}/{date}/{hour:[0-9]+}", timeSlotHandler.CheckSlot).Methods("GET")

	protected.HandleFunc("/appointments", appointmentHandler.CreateAppointment).Methods("POST")
	protected.HandleFunc("/appointments", appointmentHandler.GetAppointments).Methods("GET")
	protected.HandleFunc("/appointments/{id:[0-9]+}/status", appointmentHandler.UpdateAppointmentStatus).Methods("PATCH")
	protected.HandleFunc("/appointments/{id:[0-9]+}", appointmentHandler.CancelAppointment).Methods("DELETE")

	protected.HandleFunc("/subscriptions", subscriptionHandler.CreateSubscription).Methods("POST")
	protected.HandleFunc("/subscriptions", subscriptionHandler.GetSubscriptions).Methods("GET")
	protected.HandleFunc("/plans/{id:[0-9]+}/purchase", subscriptionHandler.PurchasePlan).Methods("POST")

	// --- Только админ ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole(models.RoleAdmin))
	admin.HandleFunc("/users", authHandler.GetUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}", authHandler.GetUserByID).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}", authHandler.UpdateUser).Methods("PATCH")
	admin.HandleFunc("/users/{id:[0-9]+}", authHandler.DeleteUser).Methods("DELETE")

	admin.HandleFunc("/trainers", trainerHandler.CreateTrainer).Methods("POST")
	admin.HandleFunc("/timeslots/provision/{trainerId:[0-9]+}", timeSlotHandler.ProvisionSlots).Methods("POST")

	admin.HandleFunc("/plans", planHandler.CreatePlan).Methods("POST")
	admin.HandleFunc("/plans/{id:[0-9]+}", planHandler.UpdatePlan).Methods("PATCH")
	admin.HandleFunc("/plans/{id:[0-9]+}", planHandler.DeletePlan).Methods("DELETE")

	admin.HandleFunc("/subscriptions/{id:[0-9]+}", subscriptionHandler.DeleteSubscription).Methods("DELETE")
}
