package handlers

import (
	"net/http"
	"strconv"
	"time"

	"gymfit/internal/logger"
	"gymfit/internal/services"
	helpers "gymfit/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type TimeSlotHandler struct {
	scheduleService *services.ScheduleService
}

func NewTimeSlotHandler(scheduleService *services.ScheduleService) *TimeSlotHandler {
	return &TimeSlotHandler{scheduleService: scheduleService}
}

// GetTrainerSlots godoc
// @Summary Шаблонные слоты тренера
// @Tags timeslots
// @Security ApiKeyAuth
// @Produce json
// @Param trainerId path int true "ID тренера"
// @Success 200 {array} models.TimeSlot
// @Failure 404 {string} string "Тренер не найден"
// @Router /api/timeslots/trainer/{trainerId} [get]
func (h *TimeSlotHandler) GetTrainerSlots(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.Atoi(mux.Vars(r)["trainerId"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID тренера")
		return
	}

	slots, err := h.scheduleService.TrainerSlots(r.Context(), trainerID)
	if err != nil {
		serviceError(w, err, "Ошибка получения слотов")
		return
	}
	helpers.JSON(w, http.StatusOK, slots)
}

// GetAvailableHours godoc
// @Summary Свободные часы тренера на дату
// @Tags timeslots
// @Security ApiKeyAuth
// @Produce json
// @Param trainerId path int true "ID тренера"
// @Param date path string true "Дата (yyyy-mm-dd)"
// @Success 200 {array} int
// @Failure 400 {string} string "Прошедшая дата"
// @Failure 404 {string} string "Тренер не найден"
// @Router /api/timeslots/available/{trainerId}/{date} [get]
func (h *TimeSlotHandler) GetAvailableHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.Atoi(vars["trainerId"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID тренера")
		return
	}

	date, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная дата, ожидается yyyy-mm-dd")
		return
	}

	logger.Log.Info("Запрос свободных часов",
		zap.Int("trainer_id", trainerID), zap.String("date", vars["date"]))

	hours, err := h.scheduleService.AvailableHours(r.Context(), trainerID, date)
	if err != nil {
		serviceError(w, err, "Ошибка расчёта доступности")
		return
	}
	helpers.JSON(w, http.StatusOK, hours)
}

// CheckSlot godoc
// @Summary Проверить доступность конкретного часа
// @Tags timeslots
// @Security ApiKeyAuth
// @Produce json
// @Param trainerId path int true "ID тренера"
// @Param date path string true "Дата (yyyy-mm-dd)"
// @Param hour path int true "Час"
// @Success 200 {boolean} bool
// @Failure 400 {string} string "Час вне рабочего окна"
// @Router /api/timeslots/check/{trainerId}/{date}/{hour} [get]
func (h *TimeSlotHandler) CheckSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.Atoi(vars["trainerId"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID тренера")
		return
	}

	date, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная дата, ожидается yyyy-mm-dd")
		return
	}

	hour, err := strconv.Atoi(vars["hour"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный час")
		return
	}

	available, err := h.scheduleService.CheckHour(r.Context(), trainerID, date, hour)
	if err != nil {
		serviceError(w, err, "Ошибка проверки слота")
		return
	}
	helpers.JSON(w, http.StatusOK, available)
}

// ProvisionSlots godoc
// @Summary Дозавести слоты для существующего тренера (только админ)
// @Tags admin-timeslots
// @Security ApiKeyAuth
// @Produce json
// @Param trainerId path int true "ID тренера"
// @Success 201 {array} models.TimeSlot
// @Failure 400 {string} string "У тренера уже есть слоты"
// @Failure 404 {string} string "Тренер не найден"
// @Router /api/admin/timeslots/provision/{trainerId} [post]
func (h *TimeSlotHandler) ProvisionSlots(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.Atoi(mux.Vars(r)["trainerId"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID тренера")
		return
	}

	slots, err := h.scheduleService.ProvisionSlots(r.Context(), trainerID)
	if err != nil {
		serviceError(w, err, "Ошибка создания слотов")
		return
	}

	logger.Log.Info("Слоты дозаведены", zap.Int("trainer_id", trainerID), zap.Int("count", len(slots)))
	helpers.JSON(w, http.StatusCreated, slots)
}
