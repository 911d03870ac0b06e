package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Abdurrokhman02/gh-library/internal/validation"
)

// envelope - общий формат ответа API каталога.
type envelope struct {
	Status   int               `json:"status"`
	Message  string            `json:"message"`
	Data     interface{}       `json:"data,omitempty"`
	Messages map[string]string `json:"messages,omitempty"`
}

// writeJSON сериализует v в тело ответа с кодом status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handlers] Ошибка кодирования ответа: %v", err)
	}
}

func respond(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, envelope{Status: status, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: status, Message: message})
}

// respondValidation отвечает 400 с сообщениями по полям.
// Возвращает false, если err не является ошибкой валидации.
func respondValidation(w http.ResponseWriter, err error) bool {
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, envelope{
		Status:   http.StatusBadRequest,
		Message:  "Ошибка валидации данных",
		Messages: vErr.Fields,
	})
	return true
}

// decodeJSON читает JSON из тела запроса.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
