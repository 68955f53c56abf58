package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bitsblog-admin/internal/scheduler"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeAdExpiration = "ad-expiration"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	AdExpirationSyncService *scheduler.AdExpirationSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := param(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAdExpiration, CronJobTypeAll:
			if services.AdExpirationSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de expiração de anúncios não disponível", nil)
				return
			}
			services.AdExpirationSyncService.TriggerManualSync(r.Context())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ad-expiration, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.AdExpirationSyncService != nil {
			status[CronJobTypeAdExpiration] = services.AdExpirationSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
