package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-dna-api/internal/domain"
	"github.com/vfg2006/client-dna-api/internal/usecases/campaign"
	"github.com/vfg2006/client-dna-api/pkg/apiErrors"
)

func CreateCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		w.Header().Set("Content-Type", "application/json")

		var createRequest domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.CreateCampaign(&createRequest)
		if err != nil {
			logrus.Error("Error creating campaign:", err)
			writeCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListCampaigns(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListActiveCampaigns()
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		resp, err := service.GetCampaign(id)
		if err != nil {
			logrus.Error("Error getting campaign:", err)
			writeCampaignError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListCampaignsByDNA retorna as campanhas ativas vinculadas a um DNA
func ListCampaignsByDNA(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do DNA é obrigatório", nil)
			return
		}

		campaigns, err := service.ListCampaignsByDNA(id)
		if err != nil {
			logrus.Error("Error listing campaigns by client DNA:", err)
			writeCampaignError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		resp, err := service.UpdateCampaign(&updateRequest)
		if err != nil {
			logrus.Error("Error updating campaign:", err)
			writeCampaignError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeactivateCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeactivateCampaign")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		if err := service.DeactivateCampaign(id); err != nil {
			logrus.Error("Error deactivating campaign:", err)
			writeCampaignError(w, err)
			return
		}

		response := map[string]any{
			"id":       id,
			"isActive": false,
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeCampaignError traduz erros do caso de uso de campanhas para a resposta da API
func writeCampaignError(w http.ResponseWriter, err error) {
	// Verificar se é um CampaignError para obter detalhes específicos do erro
	var campaignErr *campaign.CampaignError
	if errors.As(err, &campaignErr) {
		var details any
		if campaignErr.CampaignID != "" {
			details = map[string]any{"campaign_id": campaignErr.CampaignID}
		}
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
		return
	}

	// Caso não seja um CampaignError específico, verificar erros comuns
	switch {
	case errors.Is(err, campaign.ErrCampaignNotFound) || errors.Is(err, campaign.ErrClientDNANotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Recurso não encontrado", nil)

	case errors.Is(err, campaign.ErrEmptyPlatforms):
		apiErrors.WriteError(w, apiErrors.ErrEmptyPlatforms, "A campanha precisa de ao menos uma plataforma", nil)

	case errors.Is(err, campaign.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Período de veiculação inválido", nil)

	case errors.Is(err, campaign.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar campanha", nil)
	}
}
