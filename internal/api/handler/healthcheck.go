package handler

import (
	"net/http"
	"time"
)

type HealthcheckResponse struct {
	Status         string `json:"status"`
	Time           string `json:"time"`
	MetaConfigured bool   `json:"meta_configured"`
}

// HealthcheckHandler responde ok mesmo sem credenciais: nesse caso os comandos de leitura
// usam os dados de demonstração, e meta_configured indica isso.
func HealthcheckHandler(metaConfigured bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthcheckResponse{
			Status:         "ok",
			Time:           time.Now().Format(time.RFC3339),
			MetaConfigured: metaConfigured,
		})
	})
}
