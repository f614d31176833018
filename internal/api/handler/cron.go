package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-control-api/pkg/apiErrors"
)

const (
	CronJobTypeBudgetWatch = "budget-watch"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	BudgetWatchService CronJob
}

func (s CronJobServices) byType(cronType string) CronJob {
	switch cronType {
	case CronJobTypeBudgetWatch:
		if s.BudgetWatchService != nil {
			return s.BudgetWatchService
		}
	}
	return nil
}

// RunCronJob executa manualmente o job do tipo informado
func RunCronJob(services CronJobServices, cronType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job := services.byType(cronType)
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cron job não disponível", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		if !job.TriggerManualSync() {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Cron job já está em execução",
				"type":    cronType,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status dos jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.BudgetWatchService != nil {
			status[CronJobTypeBudgetWatch] = services.BudgetWatchService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
