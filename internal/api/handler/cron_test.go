package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
	"github.com/vfg2006/bitsblog-admin/internal/api/handler/router"
	"github.com/vfg2006/bitsblog-admin/internal/config"
	"github.com/vfg2006/bitsblog-admin/internal/scheduler"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/authorizing"
)

type noopExpirer struct{}

func (noopExpirer) ExpireAdvertisements(context.Context) (*blogdomain.ActionResult, error) {
	return &blogdomain.ActionResult{}, nil
}

func newCronRouter() http.Handler {
	svc := scheduler.NewAdExpirationSyncService(noopExpirer{}, &config.Config{
		AdExpirationSync: config.AdExpirationSync{CronSchedule: "0 2 * * *"},
	})
	guard := authorizing.NewGuard(staffResolver{}, "/")

	return router.New(router.WithRoutes(CronJobs(CronJobServices{AdExpirationSyncService: svc}, guard)...))
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		wantStatus int
	}{
		{name: "expiração de anúncios", cronType: CronJobTypeAdExpiration, wantStatus: http.StatusAccepted},
		{name: "todas", cronType: CronJobTypeAll, wantStatus: http.StatusAccepted},
		{name: "tipo inválido", cronType: "stores", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newCronRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	newCronRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	status := body[CronJobTypeAdExpiration].(map[string]any)
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_enabled"])
}
