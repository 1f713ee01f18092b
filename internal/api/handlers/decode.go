package handlers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON декодирует тело запроса в указанную структуру
// Неизвестные поля в теле запроса считаются ошибкой
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
