package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"gymfit/internal/logger"
	"gymfit/internal/middleware"
	"gymfit/internal/models"
	"gymfit/internal/services"
	helpers "gymfit/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	scheduleService *services.ScheduleService
}

func NewAppointmentHandler(scheduleService *services.ScheduleService) *AppointmentHandler {
	return &AppointmentHandler{scheduleService: scheduleService}
}

func requester(r *http.Request) (int, models.Role) {
	userID, _ := r.Context().Value(middleware.ContextUserID).(int)
	role, _ := r.Context().Value(middleware.ContextRole).(models.Role)
	return userID, role
}

// CreateAppointment godoc
// @Summary Записаться на тренировку
// @Tags appointments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateAppointmentRequest true "Данные записи"
// @Success 201 {object} models.Appointment
// @Failure 400 {string} string "Ошибка валидации или час занят"
// @Failure 403 {string} string "Нельзя записать другого пользователя"
// @Failure 404 {string} string "Пользователь или тренер не найден"
// @Router /api/appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании записи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная дата, ожидается yyyy-mm-dd")
		return
	}

	requesterID, requesterRole := requester(r)
	if req.UserID == 0 {
		req.UserID = requesterID
	}

	appointment, err := h.scheduleService.CreateAppointment(
		r.Context(),
		req.UserID,
		req.TrainerID,
		date,
		req.Hour,
		models.AppointmentStatus(req.Status),
		requesterID,
		requesterRole,
	)
	if err != nil {
		logger.Log.Warn("Отказ в создании записи", zap.Error(err),
			zap.Int("user_id", req.UserID), zap.Int("trainer_id", req.TrainerID))
		serviceError(w, err, "Ошибка создания записи")
		return
	}

	helpers.JSON(w, http.StatusCreated, appointment)
}

// GetAppointments godoc
// @Summary Список записей (админ все, тренер свои, клиент свои)
// @Tags appointments
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 401 {string} string "Нет доступа"
// @Router /api/appointments [get]
func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	requesterID, requesterRole := requester(r)

	appointments, err := h.scheduleService.ListAppointmentsFor(r.Context(), requesterID, requesterRole)
	if err != nil {
		serviceError(w, err, "Ошибка получения записей")
		return
	}
	helpers.JSON(w, http.StatusOK, appointments)
}

// UpdateAppointmentStatus godoc
// @Summary Сменить статус записи
// @Tags appointments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param input body models.UpdateAppointmentRequest true "Новый статус"
// @Success 200 {object} models.Appointment
// @Failure 400 {string} string "Недопустимый статус или запись завершена"
// @Failure 403 {string} string "Недостаточно прав"
// @Failure 404 {string} string "Запись не найдена"
// @Router /api/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	var req models.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при смене статуса", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	requesterID, requesterRole := requester(r)

	appointment, err := h.scheduleService.UpdateAppointmentStatus(r.Context(), id, req.Status, requesterID, requesterRole)
	if err != nil {
		serviceError(w, err, "Ошибка обновления статуса")
		return
	}
	helpers.JSON(w, http.StatusOK, appointment)
}

// CancelAppointment godoc
// @Summary Отменить запись
// @Tags appointments
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} models.Appointment
// @Failure 400 {string} string "Запись уже завершена или отменена"
// @Failure 403 {string} string "Недостаточно прав"
// @Failure 404 {string} string "Запись не найдена"
// @Router /api/appointments/{id} [delete]
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	requesterID, requesterRole := requester(r)

	appointment, err := h.scheduleService.UpdateAppointmentStatus(
		r.Context(), id, string(models.StatusCancelled), requesterID, requesterRole)
	if err != nil {
		serviceError(w, err, "Ошибка отмены записи")
		return
	}

	logger.Log.Info("Запись отменена", zap.Int("appointment_id", id), zap.Int("requester_id", requesterID))
	helpers.JSON(w, http.StatusOK, appointment)
}
