// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-dna-api/internal/config"
	"github.com/vfg2006/client-dna-api/internal/usecases/campaign"
)

type CampaignExpirySyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// CampaignExpirySyncService encerra diariamente as campanhas cujo
// período de veiculação já terminou
type CampaignExpirySyncService struct {
	scheduler           *gocron.Scheduler
	campaignService     campaign.CampaignService
	config              CampaignExpirySyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCampaignExpirySyncService(
	campaignService campaign.CampaignService,
	cfg *config.Config,
) *CampaignExpirySyncService {
	expiryConfig := CampaignExpirySyncConfig{
		CronSchedule: cfg.CampaignExpirySync.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.CampaignExpirySync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": expiryConfig.CronSchedule,
	}).Info("Configuração do agendador de encerramento de campanhas carregada")

	return &CampaignExpirySyncService{
		scheduler:       scheduler,
		campaignService: campaignService,
		config:          expiryConfig,
	}
}

func (s *CampaignExpirySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de encerramento de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de encerramento de campanhas")

	// Agendar o encerramento de campanhas expiradas
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CloseExpiredCampaigns(); err != nil {
			logrus.WithError(err).Error("Erro no encerramento de campanhas expiradas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar encerramento de campanhas expiradas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de encerramento de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CampaignExpirySyncService) CloseExpiredCampaigns() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Encerramento de campanhas expiradas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando encerramento de campanhas expiradas")

	closed, err := s.campaignService.CloseExpiredCampaigns(time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Erro ao encerrar campanhas expiradas")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"closed_campaigns": closed,
	}).Info("Encerramento de campanhas expiradas concluído")

	return nil
}

// TriggerManualSync inicia manualmente um encerramento de campanhas expiradas
func (s *CampaignExpirySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Encerramento de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando encerramento manual de campanhas expiradas")
	go s.CloseExpiredCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignExpirySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
