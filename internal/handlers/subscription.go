package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"gymfit/internal/logger"
	"gymfit/internal/models"
	"gymfit/internal/services"
	helpers "gymfit/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// CreateSubscription godoc
// @Summary Оформить абонемент
// @Tags subscriptions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateSubscriptionRequest true "Данные абонемента"
// @Success 201 {object} models.Subscription
// @Failure 400 {string} string "Ошибка валидации или дубликат активного абонемента"
// @Failure 403 {string} string "Нельзя оформить абонемент другому пользователю"
// @Failure 404 {string} string "Пользователь не найден"
// @Router /api/subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при оформлении абонемента", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная дата начала, ожидается yyyy-mm-dd")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная дата окончания, ожидается yyyy-mm-dd")
		return
	}

	requesterID, requesterRole := requester(r)
	if req.UserID == 0 {
		req.UserID = requesterID
	}

	sub := &models.Subscription{
		UserID:    req.UserID,
		Type:      models.SubscriptionType(req.Type),
		Price:     req.Price,
		StartDate: start,
		EndDate:   end,
	}

	created, err := h.subscriptionService.CreateSubscription(r.Context(), sub, requesterID, requesterRole)
	if err != nil {
		logger.Log.Warn("Отказ в оформлении абонемента", zap.Error(err), zap.Int("user_id", req.UserID))
		serviceError(w, err, "Ошибка оформления абонемента")
		return
	}

	helpers.JSON(w, http.StatusCreated, created)
}

// GetSubscriptions godoc
// @Summary Список абонементов (админ все, клиент свои)
// @Tags subscriptions
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Subscription
// @Failure 401 {string} string "Нет доступа"
// @Router /api/subscriptions [get]
func (h *SubscriptionHandler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	requesterID, requesterRole := requester(r)

	subs, err := h.subscriptionService.ListSubscriptionsFor(r.Context(), requesterID, requesterRole)
	if err != nil {
		serviceError(w, err, "Ошибка получения абонементов")
		return
	}
	helpers.JSON(w, http.StatusOK, subs)
}

// PurchasePlan godoc
// @Summary Купить абонемент по тарифному плану
// @Tags subscriptions
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID тарифного плана"
// @Success 201 {object} models.Subscription
// @Failure 400 {string} string "Дубликат активного абонемента"
// @Failure 404 {string} string "Тарифный план не найден"
// @Router /api/plans/{id}/purchase [post]
func (h *SubscriptionHandler) PurchasePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID плана")
		return
	}

	requesterID, requesterRole := requester(r)

	sub, err := h.subscriptionService.PurchaseFromPlan(r.Context(), planID, requesterID, requesterID, requesterRole)
	if err != nil {
		logger.Log.Warn("Отказ в покупке по плану", zap.Error(err),
			zap.Int("plan_id", planID), zap.Int("user_id", requesterID))
		serviceError(w, err, "Ошибка покупки абонемента")
		return
	}

	helpers.JSON(w, http.StatusCreated, sub)
}

// DeleteSubscription godoc
// @Summary Удалить абонемент (только админ)
// @Tags admin-subscriptions
// @Security ApiKeyAuth
// @Param id path int true "ID абонемента"
// @Success 200 {string} string "Абонемент удалён"
// @Failure 404 {string} string "Абонемент не найден"
// @Router /api/admin/subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	if err := h.subscriptionService.DeleteSubscription(r.Context(), id); err != nil {
		serviceError(w, err, "Ошибка удаления абонемента")
		return
	}
	helpers.JSON(w, http.StatusOK, "Абонемент удалён")
}
