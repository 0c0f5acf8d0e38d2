package dna

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-dna-api/infrastructure/repository"
	"github.com/vfg2006/client-dna-api/internal/domain"
	"github.com/vfg2006/client-dna-api/pkg/apiErrors"
	"github.com/vfg2006/client-dna-api/pkg/utils"
)

type DNAService interface {
	CreateDNA(request *domain.CreateClientDNARequest) (*domain.ClientDNA, error)
	GetDNA(id string) (*domain.ClientDNA, error)
	ListActiveDNAs() ([]*domain.ClientDNA, error)
	UpdateDNA(request *domain.UpdateClientDNARequest) (*domain.ClientDNA, error)
	DeactivateDNA(id string) error
}

type Service struct {
	dnaRepository repository.ClientDNARepository
}

func NewService(dnaRepository repository.ClientDNARepository) DNAService {
	return &Service{
		dnaRepository: dnaRepository,
	}
}

func (s *Service) CreateDNA(request *domain.CreateClientDNARequest) (*domain.ClientDNA, error) {
	if missing := missingRequiredFields(request); len(missing) > 0 {
		return nil, NewDNAError(
			ErrMissingRequiredFields,
			apiErrors.ErrMissingRequiredData,
			"campos obrigatórios ausentes: "+strings.Join(missing, ", "),
		)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDNAError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o DNA")
	}

	now := time.Now().UTC()

	clientDNA := &domain.ClientDNA{
		ID:             id,
		ClientName:     request.ClientName,
		Industry:       request.Industry,
		BrandTone:      request.BrandTone,
		TargetAudience: *request.TargetAudience,
		Geography:      *request.Geography,
		Psychographics: *request.Psychographics,
		Products:       request.Products,
		Competitors:    request.Competitors,
		Version:        1,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.dnaRepository.Insert(clientDNA); err != nil {
		logrus.Error("Error inserting client DNA on the repository:", err)
		return nil, NewDNAError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar DNA no banco de dados")
	}

	logrus.Infof("Client DNA created: %s", clientDNA.ID)

	return clientDNA, nil
}

// GetDNA retorna o DNA pelo ID, independentemente do status ativo,
// permitindo consulta de registros desativados para auditoria
func (s *Service) GetDNA(id string) (*domain.ClientDNA, error) {
	if id == "" {
		return nil, NewDNAError(ErrDNAIDRequired, apiErrors.ErrMissingRequiredData, "ID do DNA é obrigatório")
	}

	clientDNA, err := s.dnaRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting client DNA by id on the repository:", err)
		return nil, NewDNAErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar DNA no banco de dados")
	}

	if clientDNA == nil {
		return nil, NewDNAErrorWithID(ErrDNANotFound, apiErrors.ErrResourceNotFound, id, "DNA não encontrado")
	}

	return clientDNA, nil
}

func (s *Service) ListActiveDNAs() ([]*domain.ClientDNA, error) {
	dnas, err := s.dnaRepository.ListActive()
	if err != nil {
		logrus.Error("Error listing client DNAs on the repository:", err)
		return nil, NewDNAError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar DNAs no banco de dados")
	}

	return dnas, nil
}

// UpdateDNA aplica o patch sobre a versão corrente e grava uma nova versão.
// O contador de versão é lido e regravado sem bloqueio no banco; duas
// atualizações simultâneas do mesmo DNA podem gravar a mesma versão
func (s *Service) UpdateDNA(request *domain.UpdateClientDNARequest) (*domain.ClientDNA, error) {
	current, err := s.GetDNA(request.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	applyDNAPatch(&updated, request)

	updated.Version = current.Version + 1
	updated.UpdatedAt = time.Now().UTC()

	if err := s.dnaRepository.Update(&updated); err != nil {
		logrus.Error("Error updating client DNA on the repository:", err)
		return nil, NewDNAErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar DNA no banco de dados")
	}

	logrus.Infof("Client DNA %s updated to version %d", updated.ID, updated.Version)

	return &updated, nil
}

// DeactivateDNA desativa o DNA (soft delete). A operação é idempotente:
// desativar um DNA já inativo não é um erro
func (s *Service) DeactivateDNA(id string) error {
	if _, err := s.GetDNA(id); err != nil {
		return err
	}

	if err := s.dnaRepository.Deactivate(id); err != nil {
		logrus.Error("Error deactivating client DNA on the repository:", err)
		return NewDNAErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao desativar DNA no banco de dados")
	}

	logrus.Infof("Client DNA deactivated: %s", id)

	return nil
}

func missingRequiredFields(request *domain.CreateClientDNARequest) []string {
	missing := make([]string, 0)

	if request.ClientName == "" {
		missing = append(missing, "clientName")
	}

	if request.Industry == "" {
		missing = append(missing, "industry")
	}

	if request.BrandTone == "" {
		missing = append(missing, "brandTone")
	}

	if request.TargetAudience == nil {
		missing = append(missing, "targetAudience")
	}

	if request.Geography == nil {
		missing = append(missing, "geography")
	}

	if request.Psychographics == nil {
		missing = append(missing, "psychographics")
	}

	return missing
}

func applyDNAPatch(dna *domain.ClientDNA, patch *domain.UpdateClientDNARequest) {
	if patch.ClientName != nil {
		dna.ClientName = *patch.ClientName
	}

	if patch.Industry != nil {
		dna.Industry = *patch.Industry
	}

	if patch.BrandTone != nil {
		dna.BrandTone = *patch.BrandTone
	}

	if patch.TargetAudience != nil {
		dna.TargetAudience = *patch.TargetAudience
	}

	if patch.Geography != nil {
		dna.Geography = *patch.Geography
	}

	if patch.Psychographics != nil {
		dna.Psychographics = *patch.Psychographics
	}

	if patch.Products != nil {
		dna.Products = patch.Products
	}

	if patch.Competitors != nil {
		dna.Competitors = patch.Competitors
	}
}
