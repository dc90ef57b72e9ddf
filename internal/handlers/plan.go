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

type PlanHandler struct {
	planService *services.PlanService
}

func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetPlans godoc
// @Summary Каталог тарифных планов
// @Tags plans
// @Produce json
// @Success 200 {array} models.SubscriptionPlan
// @Router /api/plans [get]
func (h *PlanHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.GetAllPlans(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка получения планов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения планов")
		return
	}
	helpers.JSON(w, http.StatusOK, plans)
}

// GetPlan godoc
// @Summary Получить тарифный план по ID
// @Tags plans
// @Produce json
// @Param id path int true "ID плана"
// @Success 200 {object} models.SubscriptionPlan
// @Failure 404 {string} string "План не найден"
// @Router /api/plans/{id} [get]
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	plan, err := h.planService.GetPlanByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "Ошибка получения плана")
		return
	}
	helpers.JSON(w, http.StatusOK, plan)
}

// CreatePlan godoc
// @Summary Создать тарифный план (только админ)
// @Tags admin-plans
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreatePlanRequest true "Данные плана"
// @Success 201 {object} models.SubscriptionPlan
// @Failure 400 {string} string "Ошибка валидации или дубликат имени"
// @Router /api/admin/plans [post]
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании плана", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	plan, err := h.planService.CreatePlan(r.Context(), &req)
	if err != nil {
		logger.Log.Warn("Отказ в создании плана", zap.Error(err), zap.String("name", req.Name))
		serviceError(w, err, "Ошибка создания плана")
		return
	}

	helpers.JSON(w, http.StatusCreated, plan)
}

// UpdatePlan godoc
// @Summary Частичное обновление тарифного плана (только админ)
// @Tags admin-plans
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID плана"
// @Param input body models.UpdatePlanRequest true "Что обновить"
// @Success 200 {string} string "План обновлён"
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 404 {string} string "План не найден"
// @Router /api/admin/plans/{id} [patch]
func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	var req models.UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при обновлении плана", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	if err := h.planService.UpdatePlan(r.Context(), id, &req); err != nil {
		serviceError(w, err, "Ошибка обновления плана")
		return
	}

	logger.Log.Info("Тарифный план обновлён", zap.Int("plan_id", id))
	helpers.JSON(w, http.StatusOK, "План обновлён")
}

// DeletePlan godoc
// @Summary Удалить тарифный план (только админ)
// @Tags admin-plans
// @Security ApiKeyAuth
// @Param id path int true "ID плана"
// @Success 200 {string} string "План удалён"
// @Failure 404 {string} string "План не найден"
// @Router /api/admin/plans/{id} [delete]
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	if err := h.planService.DeletePlan(r.Context(), id); err != nil {
		serviceError(w, err, "Ошибка удаления плана")
		return
	}
	helpers.JSON(w, http.StatusOK, "План удалён")
}
