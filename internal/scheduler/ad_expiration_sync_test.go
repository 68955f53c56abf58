package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
	"github.com/vfg2006/bitsblog-admin/internal/config"
)

type fakeExpirer struct {
	mu     sync.Mutex
	calls  int
	tokens []string
	result *blogdomain.ActionResult
	err    error
}

func (f *fakeExpirer) ExpireAdvertisements(ctx context.Context) (*blogdomain.ActionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.tokens = append(f.tokens, blogclient.TokenFromContext(ctx))
	return f.result, f.err
}

func (f *fakeExpirer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestService(expirer AdExpirer) *AdExpirationSyncService {
	return NewAdExpirationSyncService(expirer, &config.Config{
		Auth: config.Auth{ServiceToken: "service-token"},
		AdExpirationSync: config.AdExpirationSync{
			CronSchedule: "0 2 * * *",
			Enabled:      true,
		},
	})
}

func TestExpireAdvertisements_Sucesso(t *testing.T) {
	expirer := &fakeExpirer{result: &blogdomain.ActionResult{ExpiredCount: 3}}
	svc := newTestService(expirer)

	svc.expireAdvertisements(svc.scheduledContext(context.Background()))

	status := svc.GetStatus()
	assert.Equal(t, 3, status["last_expired_count"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	assert.Equal(t, []string{"service-token"}, expirer.tokens)
}

func TestExpireAdvertisements_Erro(t *testing.T) {
	expirer := &fakeExpirer{err: errors.New("status 502")}
	svc := newTestService(expirer)

	svc.expireAdvertisements(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, "status 502", status["last_error"])
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestExpireAdvertisements_RespostaVazia(t *testing.T) {
	svc := newTestService(&fakeExpirer{})

	svc.expireAdvertisements(context.Background())

	assert.Equal(t, 0, svc.GetStatus()["last_expired_count"])
}

func TestTriggerManualSync_UsaTokenDeQuemPediu(t *testing.T) {
	expirer := &fakeExpirer{result: &blogdomain.ActionResult{ExpiredCount: 1}}
	svc := newTestService(expirer)

	ctx, cancel := context.WithCancel(blogclient.WithToken(context.Background(), "staff-token"))
	svc.TriggerManualSync(ctx)
	cancel()

	assert.Eventually(t, func() bool { return expirer.Calls() == 1 }, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return svc.GetStatus()["sync_running"] == false }, time.Second, 10*time.Millisecond)

	expirer.mu.Lock()
	defer expirer.mu.Unlock()
	assert.Equal(t, []string{"staff-token"}, expirer.tokens)
}

func TestStart_Desabilitado(t *testing.T) {
	svc := NewAdExpirationSyncService(&fakeExpirer{}, &config.Config{})

	assert.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, false, svc.GetStatus()["sync_enabled"])
}

func TestStart_CronInvalido(t *testing.T) {
	svc := NewAdExpirationSyncService(&fakeExpirer{}, &config.Config{
		AdExpirationSync: config.AdExpirationSync{CronSchedule: "isso não é cron", Enabled: true},
	})

	assert.Error(t, svc.Start(context.Background()))
}
