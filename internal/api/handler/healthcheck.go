package handler

import (
	"net/http"
	"time"
)

type healthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// HealthcheckHandler não consulta a API do blog; só indica que o serviço está de pé
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthcheckResponse{Status: "ok", Time: time.Now().UTC()})
	})
}
