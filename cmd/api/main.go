package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/costimporter"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/costimporter/costclient"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/sales"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/sales/salesclient"
	"github.com/vfg2006/traffic-crm-reporting/internal/api"
	"github.com/vfg2006/traffic-crm-reporting/internal/config"
	"github.com/vfg2006/traffic-crm-reporting/internal/usecases/authenticating"
	"github.com/vfg2006/traffic-crm-reporting/internal/usecases/reporting"
	"github.com/vfg2006/traffic-crm-reporting/pkg/log"
	"github.com/vfg2006/traffic-crm-reporting/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	if err := log.Setup(cfg.App.LogLevel, false); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup("info", false)
	}
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New(cfg.Metrics.Namespace)

	salesIntegrator := sales.New(cfg, salesclient.NewClient(cfg))
	costIntegrator := costimporter.New(cfg, costclient.NewClient(cfg))

	reportingService := reporting.NewService(salesIntegrator, costIntegrator, m)

	var authenticator authenticating.Authenticator
	if cfg.AuthEnabled() {
		authenticator = authenticating.NewService(cfg)
	}

	log.L.WithFields(log.Fields{
		"sales_url":         cfg.Sales.URL,
		"cost_importer_url": cfg.CostImporter.URL,
		"upstream_timeout":  cfg.Upstream.Timeout.String(),
		"auth_enabled":      cfg.AuthEnabled(),
	}).Info("Serviços de integração configurados")

	server, err := api.New(cfg, reportingService, authenticator, m)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
