package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gymfit/internal/services"
	helpers "gymfit/internal/utils/helpres"
)

// serviceError переводит отказ сервиса в HTTP-статус:
// not_found→404, forbidden→403, unauthorized→401, остальные отказы→400.
// Всё прочее — неожиданная ошибка хранилища, наружу уходит 500 без деталей.
func serviceError(w http.ResponseWriter, err error, fallback string) {
	var rej *services.RejectError
	if errors.As(err, &rej) {
		status := http.StatusBadRequest
		switch {
		case strings.HasPrefix(rej.Code, "not_found"):
			status = http.StatusNotFound
		case rej.Code == "forbidden":
			status = http.StatusForbidden
		case rej.Code == "unauthorized":
			status = http.StatusUnauthorized
		}
		helpers.ErrorCode(w, status, rej.Code, rej.Message)
		return
	}
	helpers.Error(w, http.StatusInternalServerError, fallback)
}
