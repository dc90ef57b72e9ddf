package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gymfit/internal/logger"
	"gymfit/internal/models"
	"gymfit/internal/services"
	helpers "gymfit/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type TrainerHandler struct {
	trainerService *services.TrainerService
}

func NewTrainerHandler(trainerService *services.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// GetTrainers godoc
// @Summary Список всех тренеров
// @Tags trainers
// @Produce json
// @Success 200 {array} models.Trainer
// @Router /api/trainers [get]
func (h *TrainerHandler) GetTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.trainerService.GetAllTrainers(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка получения тренеров", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения тренеров")
		return
	}
	helpers.JSON(w, http.StatusOK, trainers)
}

// GetTrainer godoc
// @Summary Получить тренера по ID
// @Tags trainers
// @Produce json
// @Param id path int true "ID тренера"
// @Success 200 {object} models.Trainer
// @Failure 404 {string} string "Тренер не найден"
// @Router /api/trainers/{id} [get]
func (h *TrainerHandler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	trainer, err := h.trainerService.GetTrainerByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "Ошибка получения тренера")
		return
	}
	helpers.JSON(w, http.StatusOK, trainer)
}

// CreateTrainer godoc
// @Summary Создать профиль тренера (только админ)
// @Tags admin-trainers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateTrainerRequest true "Данные тренера"
// @Success 201 {object} models.Trainer
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 404 {string} string "Пользователь не найден"
// @Router /api/admin/trainers [post]
func (h *TrainerHandler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTrainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании тренера", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	trainer, err := h.trainerService.CreateTrainer(r.Context(), &req)
	if err != nil {
		logger.Log.Warn("Ошибка создания тренера", zap.Error(err), zap.Int("user_id", req.UserID))
		serviceError(w, err, "Ошибка создания тренера")
		return
	}

	logger.Log.Info("Профиль тренера создан", zap.Int("trainer_id", trainer.ID))
	helpers.JSON(w, http.StatusCreated, trainer)
}
