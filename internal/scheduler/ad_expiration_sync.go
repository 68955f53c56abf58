package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
	"github.com/vfg2006/bitsblog-admin/internal/config"
)

// AdExpirer executa a expiração de anúncios vencidos na API do blog
type AdExpirer interface {
	ExpireAdvertisements(ctx context.Context) (*blogdomain.ActionResult, error)
}

// AdExpirationSyncConfig representa a configuração do agendador de expiração de anúncios
type AdExpirationSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AdExpirationSyncService agenda a chamada diária de expire_old
type AdExpirationSyncService struct {
	scheduler    *gocron.Scheduler
	config       AdExpirationSyncConfig
	expirer      AdExpirer
	serviceToken string

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastExpiredCount    int
	lastError           string
}

func NewAdExpirationSyncService(expirer AdExpirer, appConfig *config.Config) *AdExpirationSyncService {
	syncConfig := AdExpirationSyncConfig{
		CronSchedule: appConfig.AdExpirationSync.CronSchedule,
		SyncEnabled:  appConfig.AdExpirationSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de expiração de anúncios carregada")

	return &AdExpirationSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		expirer:      expirer,
		serviceToken: appConfig.Auth.ServiceToken,
	}
}

// Start inicia o agendador
func (s *AdExpirationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Expiração automática de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de expiração de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.expireAdvertisements(s.scheduledContext(ctx))
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar expiração de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de expiração de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// scheduledContext usa o token de serviço nas execuções agendadas
func (s *AdExpirationSyncService) scheduledContext(ctx context.Context) context.Context {
	ctx = context.WithoutCancel(ctx)
	if s.serviceToken != "" {
		ctx = blogclient.WithToken(ctx, s.serviceToken)
	}
	return ctx
}

// expireAdvertisements executa uma rodada por vez; chamadas concorrentes são ignoradas
func (s *AdExpirationSyncService) expireAdvertisements(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expiração de anúncios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	logrus.Info("Iniciando expiração de anúncios vencidos")

	result, err := s.expirer.ExpireAdvertisements(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao expirar anúncios vencidos")
		return
	}

	s.lastError = ""
	s.lastExpiredCount = 0
	if result != nil {
		s.lastExpiredCount = result.ExpiredCount
	}
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"expired_count": s.lastExpiredCount,
	}).Info("Expiração de anúncios concluída")
}

// TriggerManualSync inicia manualmente a expiração usando a sessão de quem pediu
func (s *AdExpirationSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expiração de anúncios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando expiração manual de anúncios")
	go s.expireAdvertisements(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do agendador
func (s *AdExpirationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_expired_count":     s.lastExpiredCount,
		"last_error":             s.lastError,
	}
}
