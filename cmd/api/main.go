package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/api"
	"github.com/vfg2006/bitsblog-admin/internal/config"
	"github.com/vfg2006/bitsblog-admin/internal/scheduler"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/authorizing"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/managing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blogClient := blogclient.NewClient(cfg)
	logrus.WithField("url", cfg.BitsBlog.URL).Info("Cliente da API do blog configurado")

	adminService := managing.NewService(blogClient, cfg)
	publicService := managing.NewPublicService(blogClient)

	resolver := authorizing.NewSessionResolver(cfg, blogClient)
	guard := authorizing.NewGuard(resolver, cfg.BitsBlog.PublicRoute)

	adExpirationSyncService := scheduler.NewAdExpirationSyncService(adminService, cfg)
	if err := adExpirationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de expiração de anúncios")
	} else {
		logrus.Info("Agendador de expiração de anúncios iniciado com sucesso")
	}

	server, err := api.New(cfg, adminService, publicService, guard, adExpirationSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
