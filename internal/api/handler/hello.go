package handler

import (
	"net/http"

	"github.com/vfg2006/adset-control-api/internal/usecases/adsetting"
)

func SayHello(service adsetting.AdSetter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Hello())
	})
}
