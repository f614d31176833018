package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/adset-control-api/internal/usecases/adsetting"
	"github.com/vfg2006/adset-control-api/pkg/apiErrors"
	"github.com/vfg2006/adset-control-api/pkg/log"
)

// ToggleRequest é o corpo de POST /v1/ads/toggle
type ToggleRequest struct {
	IDs    string `json:"ids"`
	Action string `json:"action"`
}

func SearchAdSets(service adsetting.AdSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if strings.TrimSpace(name) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro name é obrigatório", nil)
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		resp, err := service.Search(r.Context(), name, limit)
		if err != nil {
			writeAdSetError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func ListAdSets(service adsetting.AdSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, service.List(r.Context(), limit))
	})
}

func AdSetStatus(service adsetting.AdSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Status(r.Context()))
	})
}

func ToggleAdSets(service adsetting.AdSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request ToggleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if request.IDs == "" || request.Action == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os campos ids e action são obrigatórios", nil)
			return
		}

		result, err := service.Toggle(r.Context(), request.IDs, request.Action)
		if err != nil {
			writeAdSetError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"batch_id":  result.BatchID,
			"successes": len(result.Successes),
			"failures":  len(result.Failures),
		}).Info("Alteração de status concluída")

		writeJSON(w, http.StatusOK, result)
	})
}

func APITest(service adsetting.AdSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.APITest(r.Context()))
	})
}

// parseLimit lê o parâmetro opcional limit; ausente vale 0 (sem limite)
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro limit deve ser um inteiro não negativo", nil)
		return 0, false
	}

	return limit, true
}

func writeAdSetError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Erro no comando de conjuntos")

	var adSetErr *adsetting.AdSetError
	if errors.As(err, &adSetErr) {
		apiErrors.WriteError(w, adSetErr.Code, adSetErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar o comando", nil)
}
