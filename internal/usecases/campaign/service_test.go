package campaign

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/client-dna-api/infrastructure/repository/mocks"
	"github.com/vfg2006/client-dna-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestDNA() *domain.ClientDNA {
	return &domain.ClientDNA{
		ID:         "DNA001",
		ClientName: "Loja A",
		Industry:   "Retail",
		BrandTone:  "casual",
		Version:    1,
		Active:     true,
	}
}

func validDateRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateCampaign(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateCampaignRequest
		setup    func(campaignRepo *mocks.MockCampaignRepository, dnaRepo *mocks.MockClientDNARepository)
		validate func(t *testing.T, resp *domain.CampaignResponse, err error)
	}{
		{
			name: "DNA inexistente - não insere e retorna não encontrado",
			request: &domain.CreateCampaignRequest{
				Name:        "Campanha de marca",
				Objective:   domain.ObjectiveAwareness,
				ClientDNAID: "NOPE01",
				Platforms:   []domain.Platform{domain.PlatformMeta},
				DateRange:   validDateRange(),
			},
			setup: func(campaignRepo *mocks.MockCampaignRepository, dnaRepo *mocks.MockClientDNARepository) {
				dnaRepo.EXPECT().GetByID("NOPE01").Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrClientDNANotFound)
			},
		},
		{
			name: "Sem plataformas - rejeita antes de persistir",
			request: &domain.CreateCampaignRequest{
				Name:        "Campanha de marca",
				Objective:   domain.ObjectiveAwareness,
				ClientDNAID: "DNA001",
				Platforms:   []domain.Platform{},
				DateRange:   validDateRange(),
			},
			setup: func(campaignRepo *mocks.MockCampaignRepository, dnaRepo *mocks.MockClientDNARepository) {
				dnaRepo.EXPECT().GetByID("DNA001").Return(newTestDNA(), nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrEmptyPlatforms)
			},
		},
		{
			name: "Data de início após a de fim - rejeita o período",
			request: &domain.CreateCampaignRequest{
				Name:        "Campanha de marca",
				Objective:   domain.ObjectiveAwareness,
				ClientDNAID: "DNA001",
				Platforms:   []domain.Platform{domain.PlatformMeta},
				DateRange: domain.DateRange{
					Start: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			setup: func(campaignRepo *mocks.MockCampaignRepository, dnaRepo *mocks.MockClientDNARepository) {
				dnaRepo.EXPECT().GetByID("DNA001").Return(newTestDNA(), nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			},
		},
		{
			name: "Datas ausentes - período é obrigatório",
			request: &domain.CreateCampaignRequest{
				Name:        "Campanha de marca",
				Objective:   domain.ObjectiveAwareness,
				ClientDNAID: "DNA001",
				Platforms:   []domain.Platform{domain.PlatformMeta},
			},
			setup: func(campaignRepo *mocks.MockCampaignRepository, dnaRepo *mocks.MockClientDNARepository) {
				dnaRepo.EXPECT().GetByID("DNA001").Return(newTestDNA(), nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			},
		},
		{
			name: "Sem pilares nem KPIs - gera a partir do DNA e do objetivo",
			request: &domain.CreateCampaignRequest{
				Name:        "Lançamento de coleção",
				Objective:   domain.ObjectiveConversion,
				ClientDNAID: "DNA001",
				Platforms:   []domain.Platform{domain.PlatformMeta, domain.PlatformYouTube},
				DateRange:   validDateRange(),
			},
			setup: func(campaignRepo *mocks.MockCampaignRepository, dnaRepo *mocks.MockClientDNARepository) {
				dnaRepo.EXPECT().GetByID("DNA001").Return(newTestDNA(), nil)
				campaignRepo.EXPECT().Insert(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignResponse, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, resp.ID)
				assert.Equal(t, domain.CampaignStatusDraft, resp.Status)
				assert.True(t, resp.Active)
				assert.Equal(t, []string{
					"Product Benefits", "Case Studies", "Limited Offers", "Retail Trends", "Video Tutorials",
				}, resp.ContentPillars)
				assert.Equal(t, map[string]domain.KPITarget{
					"conversions":         {Target: 200, Unit: "count"},
					"conversion_rate":     {Target: 2.5, Unit: "percentage"},
					"cost_per_conversion": {Target: 25, Unit: "currency"},
				}, resp.KPIs)
				assert.NotNil(t, resp.ClientDNA)
				assert.Equal(t, "DNA001", resp.ClientDNA.ID)
			},
		},
		{
			name: "Pilares informados acima do limite - trunca em cinco",
			request: &domain.CreateCampaignRequest{
				Name:        "Campanha manual",
				Objective:   domain.ObjectiveEngagement,
				ClientDNAID: "DNA001",
				Platforms:   []domain.Platform{domain.PlatformMeta},
				ContentPillars: []string{
					"Pilar 1", "Pilar 2", "Pilar 3", "Pilar 4", "Pilar 5", "Pilar 6", "Pilar 7",
				},
				DateRange: validDateRange(),
				KPIs: map[string]domain.KPITarget{
					"likes": {Target: 100, Unit: "count"},
				},
			},
			setup: func(campaignRepo *mocks.MockCampaignRepository, dnaRepo *mocks.MockClientDNARepository) {
				dnaRepo.EXPECT().GetByID("DNA001").Return(newTestDNA(), nil)
				campaignRepo.EXPECT().Insert(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"Pilar 1", "Pilar 2", "Pilar 3", "Pilar 4", "Pilar 5"}, resp.ContentPillars)
				// KPIs informados não são regenerados
				assert.Equal(t, map[string]domain.KPITarget{
					"likes": {Target: 100, Unit: "count"},
				}, resp.KPIs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			dnaRepo := mocks.NewMockClientDNARepository(ctrl)
			tt.setup(campaignRepo, dnaRepo)

			service := NewService(campaignRepo, dnaRepo)

			resp, err := service.CreateCampaign(tt.request)
			tt.validate(t, resp, err)
		})
	}
}

func TestGetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	dnaRepo := mocks.NewMockClientDNARepository(ctrl)
	service := NewService(campaignRepo, dnaRepo)

	stored := &domain.Campaign{
		ID:          "CMP001",
		Name:        "Campanha de marca",
		ClientDNAID: "DNA001",
		Status:      domain.CampaignStatusDraft,
		Active:      true,
	}

	campaignRepo.EXPECT().GetByID("CMP001").Return(stored, nil)
	dnaRepo.EXPECT().GetByID("DNA001").Return(newTestDNA(), nil)

	resp, err := service.GetCampaign("CMP001")

	assert.NoError(t, err)
	assert.Equal(t, "CMP001", resp.ID)
	assert.NotNil(t, resp.ClientDNA)
	assert.Equal(t, "Loja A", resp.ClientDNA.ClientName)
}

func TestGetCampaignToleratesSnapshotFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	dnaRepo := mocks.NewMockClientDNARepository(ctrl)
	service := NewService(campaignRepo, dnaRepo)

	stored := &domain.Campaign{
		ID:          "CMP001",
		ClientDNAID: "DNA001",
		Active:      true,
	}

	campaignRepo.EXPECT().GetByID("CMP001").Return(stored, nil)
	dnaRepo.EXPECT().GetByID("DNA001").Return(nil, errors.New("connection reset"))

	resp, err := service.GetCampaign("CMP001")

	assert.NoError(t, err)
	assert.Equal(t, "CMP001", resp.ID)
	assert.Nil(t, resp.ClientDNA)
}

func TestGetCampaignNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	dnaRepo := mocks.NewMockClientDNARepository(ctrl)
	service := NewService(campaignRepo, dnaRepo)

	campaignRepo.EXPECT().GetByID("NOPE01").Return(nil, nil)

	resp, err := service.GetCampaign("NOPE01")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	var campaignErr *CampaignError
	assert.ErrorAs(t, err, &campaignErr)
	assert.Equal(t, "NOPE01", campaignErr.CampaignID)
}

func TestUpdateCampaignAppliesPartialPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	dnaRepo := mocks.NewMockClientDNARepository(ctrl)
	service := NewService(campaignRepo, dnaRepo)

	createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	stored := &domain.Campaign{
		ID:             "CMP001",
		Name:           "Nome antigo",
		Objective:      domain.ObjectiveAwareness,
		ClientDNAID:    "DNA001",
		Platforms:      []domain.Platform{domain.PlatformMeta},
		ContentPillars: []string{"Brand Story"},
		Status:         domain.CampaignStatusDraft,
		Active:         true,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}

	campaignRepo.EXPECT().GetByID("CMP001").Return(stored, nil)

	var persisted *domain.Campaign
	campaignRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
		persisted = c
		return nil
	})

	newName := "Nome novo"
	newStatus := domain.CampaignStatusActive
	updated, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{
		ID:     "CMP001",
		Name:   &newName,
		Status: &newStatus,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Nome novo", updated.Name)
	assert.Equal(t, domain.CampaignStatusActive, updated.Status)

	// Campos não informados permanecem intactos
	assert.Equal(t, domain.ObjectiveAwareness, updated.Objective)
	assert.Equal(t, []string{"Brand Story"}, updated.ContentPillars)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(createdAt))

	assert.Equal(t, updated, persisted)
}

func TestDeactivateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	dnaRepo := mocks.NewMockClientDNARepository(ctrl)
	service := NewService(campaignRepo, dnaRepo)

	stored := &domain.Campaign{ID: "CMP001", ClientDNAID: "DNA001", Active: true}

	campaignRepo.EXPECT().GetByID("CMP001").Return(stored, nil)
	campaignRepo.EXPECT().Deactivate("CMP001").Return(nil)

	err := service.DeactivateCampaign("CMP001")

	assert.NoError(t, err)
}

func TestCloseExpiredCampaigns(t *testing.T) {
	reference := time.Date(2025, 4, 1, 2, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(campaignRepo *mocks.MockCampaignRepository)
		expected int
		wantErr  bool
	}{
		{
			name: "Duas campanhas expiradas - ambas encerradas",
			setup: func(campaignRepo *mocks.MockCampaignRepository) {
				campaignRepo.EXPECT().
					ListExpired(reference, []string{domain.CampaignStatusDraft, domain.CampaignStatusActive}).
					Return([]*domain.Campaign{
						{ID: "CMP001", Status: domain.CampaignStatusActive},
						{ID: "CMP002", Status: domain.CampaignStatusDraft},
					}, nil)

				campaignRepo.EXPECT().UpdateStatus("CMP001", domain.CampaignStatusCompleted).Return(nil)
				campaignRepo.EXPECT().UpdateStatus("CMP002", domain.CampaignStatusCompleted).Return(nil)
			},
			expected: 2,
		},
		{
			name: "Falha em uma campanha - segue com as demais",
			setup: func(campaignRepo *mocks.MockCampaignRepository) {
				campaignRepo.EXPECT().
					ListExpired(reference, []string{domain.CampaignStatusDraft, domain.CampaignStatusActive}).
					Return([]*domain.Campaign{
						{ID: "CMP001", Status: domain.CampaignStatusActive},
						{ID: "CMP002", Status: domain.CampaignStatusActive},
					}, nil)

				campaignRepo.EXPECT().UpdateStatus("CMP001", domain.CampaignStatusCompleted).Return(errors.New("deadlock"))
				campaignRepo.EXPECT().UpdateStatus("CMP002", domain.CampaignStatusCompleted).Return(nil)
			},
			expected: 1,
		},
		{
			name: "Nenhuma campanha expirada",
			setup: func(campaignRepo *mocks.MockCampaignRepository) {
				campaignRepo.EXPECT().
					ListExpired(reference, []string{domain.CampaignStatusDraft, domain.CampaignStatusActive}).
					Return([]*domain.Campaign{}, nil)
			},
			expected: 0,
		},
		{
			name: "Erro na listagem - propaga o erro",
			setup: func(campaignRepo *mocks.MockCampaignRepository) {
				campaignRepo.EXPECT().
					ListExpired(reference, []string{domain.CampaignStatusDraft, domain.CampaignStatusActive}).
					Return(nil, errors.New("connection reset"))
			},
			expected: 0,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			dnaRepo := mocks.NewMockClientDNARepository(ctrl)
			tt.setup(campaignRepo)

			service := NewService(campaignRepo, dnaRepo)

			closed, err := service.CloseExpiredCampaigns(reference)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, closed)
		})
	}
}

func TestListActiveCampaignsResolvesSnapshotsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	dnaRepo := mocks.NewMockClientDNARepository(ctrl)
	service := NewService(campaignRepo, dnaRepo)

	campaignRepo.EXPECT().ListActive().Return([]*domain.Campaign{
		{ID: "CMP001", ClientDNAID: "DNA001"},
		{ID: "CMP002", ClientDNAID: "DNA001"},
	}, nil)

	// O mesmo DNA é resolvido uma única vez para as duas campanhas
	dnaRepo.EXPECT().GetByID("DNA001").Return(newTestDNA(), nil).Times(1)

	responses, err := service.ListActiveCampaigns()

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "DNA001", responses[0].ClientDNA.ID)
	assert.Equal(t, "DNA001", responses[1].ClientDNA.ID)
}
