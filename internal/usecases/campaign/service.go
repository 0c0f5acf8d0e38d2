package campaign

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-dna-api/infrastructure/repository"
	"github.com/vfg2006/client-dna-api/internal/domain"
	"github.com/vfg2006/client-dna-api/pkg/apiErrors"
	"github.com/vfg2006/client-dna-api/pkg/utils"
)

type CampaignService interface {
	CreateCampaign(request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error)
	GetCampaign(id string) (*domain.CampaignResponse, error)
	ListActiveCampaigns() ([]*domain.CampaignResponse, error)
	ListCampaignsByDNA(clientDNAID string) ([]*domain.Campaign, error)
	UpdateCampaign(request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeactivateCampaign(id string) error
	CloseExpiredCampaigns(reference time.Time) (int, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	dnaRepository      repository.ClientDNARepository
}

func NewService(
	campaignRepository repository.CampaignRepository,
	dnaRepository repository.ClientDNARepository,
) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		dnaRepository:      dnaRepository,
	}
}

// CreateCampaign valida a referência ao DNA e o payload, gera pilares e
// KPIs quando não informados e persiste a campanha com status inicial draft
func (s *Service) CreateCampaign(request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error) {
	clientDNA, err := s.dnaRepository.GetByID(request.ClientDNAID)
	if err != nil {
		logrus.Error("Error getting client DNA by id on the repository:", err)
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar DNA no banco de dados")
	}

	if clientDNA == nil {
		return nil, NewCampaignError(ErrClientDNANotFound, apiErrors.ErrResourceNotFound, "DNA referenciado pela campanha não encontrado")
	}

	if len(request.Platforms) == 0 {
		return nil, NewCampaignError(ErrEmptyPlatforms, apiErrors.ErrEmptyPlatforms, "A campanha precisa de ao menos uma plataforma")
	}

	if err := validateDateRange(request.DateRange); err != nil {
		return nil, err
	}

	contentPillars := request.ContentPillars
	if len(contentPillars) == 0 {
		contentPillars = generateContentPillars(request.Objective, request.Platforms, clientDNA)
	} else if len(contentPillars) > domain.MaxContentPillars {
		contentPillars = contentPillars[:domain.MaxContentPillars]
	}

	kpis := request.KPIs
	if kpis == nil {
		kpis = generateKPIs(request.Objective)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para a campanha")
	}

	now := time.Now().UTC()

	campaign := &domain.Campaign{
		ID:             id,
		Name:           request.Name,
		Objective:      request.Objective,
		ClientDNAID:    request.ClientDNAID,
		Platforms:      request.Platforms,
		ContentPillars: contentPillars,
		DateRange:      request.DateRange,
		KPIs:           kpis,
		Budget:         request.Budget,
		Status:         domain.CampaignStatusDraft,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.campaignRepository.Insert(campaign); err != nil {
		logrus.Error("Error inserting campaign on the repository:", err)
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar campanha no banco de dados")
	}

	logrus.Infof("Campaign created: %s", campaign.ID)

	return &domain.CampaignResponse{
		Campaign:  *campaign,
		ClientDNA: clientDNA,
	}, nil
}

// GetCampaign retorna a campanha com o snapshot atual do DNA do cliente.
// O snapshot pode diferir do usado na criação, já que o DNA é mutável
func (s *Service) GetCampaign(id string) (*domain.CampaignResponse, error) {
	campaign, err := s.getCampaignByID(id)
	if err != nil {
		return nil, err
	}

	return s.withClientDNA(campaign), nil
}

func (s *Service) ListActiveCampaigns() ([]*domain.CampaignResponse, error) {
	campaigns, err := s.campaignRepository.ListActive()
	if err != nil {
		logrus.Error("Error listing campaigns on the repository:", err)
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas no banco de dados")
	}

	// Evita resolver o mesmo DNA mais de uma vez na listagem
	snapshots := make(map[string]*domain.ClientDNA)

	responses := make([]*domain.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		clientDNA, ok := snapshots[campaign.ClientDNAID]
		if !ok {
			clientDNA, err = s.dnaRepository.GetByID(campaign.ClientDNAID)
			if err != nil {
				logrus.Error("Error getting client DNA by id on the repository:", err)
				return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar DNA no banco de dados")
			}
			snapshots[campaign.ClientDNAID] = clientDNA
		}

		responses = append(responses, &domain.CampaignResponse{
			Campaign:  *campaign,
			ClientDNA: clientDNA,
		})
	}

	return responses, nil
}

func (s *Service) ListCampaignsByDNA(clientDNAID string) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepository.ListByClientDNA(clientDNAID)
	if err != nil {
		logrus.Error("Error listing campaigns by client DNA on the repository:", err)
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas do DNA no banco de dados")
	}

	return campaigns, nil
}

// UpdateCampaign aplica um patch parcial sobre a campanha. Não há nova
// geração de pilares ou KPIs na atualização
func (s *Service) UpdateCampaign(request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	current, err := s.getCampaignByID(request.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	applyCampaignPatch(&updated, request)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.campaignRepository.Update(&updated); err != nil {
		logrus.Error("Error updating campaign on the repository:", err)
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar campanha no banco de dados")
	}

	logrus.Infof("Campaign updated: %s", updated.ID)

	return &updated, nil
}

// DeactivateCampaign desativa a campanha (soft delete); idempotente
func (s *Service) DeactivateCampaign(id string) error {
	if _, err := s.getCampaignByID(id); err != nil {
		return err
	}

	if err := s.campaignRepository.Deactivate(id); err != nil {
		logrus.Error("Error deactivating campaign on the repository:", err)
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao desativar campanha no banco de dados")
	}

	logrus.Infof("Campaign deactivated: %s", id)

	return nil
}

// CloseExpiredCampaigns move campanhas em rascunho ou ativas com período
// encerrado para o status completed. Retorna a quantidade encerrada
func (s *Service) CloseExpiredCampaigns(reference time.Time) (int, error) {
	expired, err := s.campaignRepository.ListExpired(reference, []string{
		domain.CampaignStatusDraft,
		domain.CampaignStatusActive,
	})
	if err != nil {
		logrus.Error("Error listing expired campaigns on the repository:", err)
		return 0, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas expiradas")
	}

	closed := 0
	for _, campaign := range expired {
		if err := s.campaignRepository.UpdateStatus(campaign.ID, domain.CampaignStatusCompleted); err != nil {
			logrus.WithField("campaign_id", campaign.ID).Error("Error closing expired campaign:", err)
			continue
		}
		closed++
	}

	return closed, nil
}

func (s *Service) getCampaignByID(id string) (*domain.Campaign, error) {
	if id == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório")
	}

	campaign, err := s.campaignRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting campaign by id on the repository:", err)
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, id, "Campanha não encontrada")
	}

	return campaign, nil
}

func (s *Service) withClientDNA(campaign *domain.Campaign) *domain.CampaignResponse {
	response := &domain.CampaignResponse{Campaign: *campaign}

	clientDNA, err := s.dnaRepository.GetByID(campaign.ClientDNAID)
	if err != nil {
		// A campanha é retornada mesmo sem o snapshot do DNA
		logrus.WithField("campaign_id", campaign.ID).Warn("Error resolving client DNA snapshot:", err)
		return response
	}

	response.ClientDNA = clientDNA
	return response
}

func validateDateRange(dateRange domain.DateRange) error {
	if dateRange.Start.IsZero() || dateRange.End.IsZero() {
		return NewCampaignError(ErrInvalidDateRange, apiErrors.ErrMissingRequiredData, "As datas de início e fim são obrigatórias")
	}

	if dateRange.Start.After(dateRange.End) {
		return NewCampaignError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, "A data de início não pode ser posterior à data de fim")
	}

	return nil
}

func applyCampaignPatch(campaign *domain.Campaign, patch *domain.UpdateCampaignRequest) {
	if patch.Name != nil {
		campaign.Name = *patch.Name
	}

	if patch.Objective != nil {
		campaign.Objective = *patch.Objective
	}

	if patch.Platforms != nil {
		campaign.Platforms = patch.Platforms
	}

	if patch.ContentPillars != nil {
		campaign.ContentPillars = patch.ContentPillars
	}

	if patch.DateRange != nil {
		campaign.DateRange = *patch.DateRange
	}

	if patch.KPIs != nil {
		campaign.KPIs = patch.KPIs
	}

	if patch.Budget != nil {
		campaign.Budget = patch.Budget
	}

	if patch.Status != nil {
		campaign.Status = *patch.Status
	}
}
