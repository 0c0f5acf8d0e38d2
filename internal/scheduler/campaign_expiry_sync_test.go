package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/client-dna-api/internal/usecases/campaign/mocks"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignService := mocks.NewMockCampaignService(ctrl)

	service := &CampaignExpirySyncService{
		campaignService: mockCampaignService,
		config: CampaignExpirySyncConfig{
			CronSchedule: "0 2 * * *",
			Enabled:      true,
		},
	}

	mockCampaignService.EXPECT().
		CloseExpiredCampaigns(gomock.Any()).
		Return(3, nil)

	err := service.CloseExpiredCampaigns()

	assert.NoError(t, err)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestCloseExpiredCampaignsPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignService := mocks.NewMockCampaignService(ctrl)

	service := &CampaignExpirySyncService{
		campaignService: mockCampaignService,
	}

	mockCampaignService.EXPECT().
		CloseExpiredCampaigns(gomock.Any()).
		Return(0, errors.New("connection reset"))

	err := service.CloseExpiredCampaigns()

	assert.Error(t, err)
	assert.False(t, service.syncRunning)
}

func TestCloseExpiredCampaignsSkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignService := mocks.NewMockCampaignService(ctrl)

	service := &CampaignExpirySyncService{
		campaignService: mockCampaignService,
		syncRunning:     true,
	}

	// Nenhuma chamada ao serviço de campanhas é esperada
	err := service.CloseExpiredCampaigns()

	assert.NoError(t, err)
}

func TestStartDisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignService := mocks.NewMockCampaignService(ctrl)

	service := &CampaignExpirySyncService{
		campaignService: mockCampaignService,
		config: CampaignExpirySyncConfig{
			CronSchedule: "0 2 * * *",
			Enabled:      false,
		},
	}

	// Desabilitado: não agenda nada e não chama o serviço de campanhas
	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestGetStatus(t *testing.T) {
	startedAt := time.Date(2025, 4, 1, 2, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(30 * time.Second)

	service := &CampaignExpirySyncService{
		config: CampaignExpirySyncConfig{
			CronSchedule: "0 2 * * *",
			Enabled:      true,
		},
		lastSyncStartedAt:   startedAt,
		lastSyncCompletedAt: completedAt,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, startedAt, status["last_sync_started_at"])
	assert.Equal(t, completedAt, status["last_sync_completed_at"])
}
