package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-dna-api/internal/domain"
	"github.com/vfg2006/client-dna-api/internal/usecases/dna"
	"github.com/vfg2006/client-dna-api/pkg/apiErrors"
)

func CreateClientDNA(service dna.DNAService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClientDNA")

		w.Header().Set("Content-Type", "application/json")

		var createRequest domain.CreateClientDNARequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		clientDNA, err := service.CreateDNA(&createRequest)
		if err != nil {
			logrus.Error("Error creating client DNA:", err)
			writeDNAError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(clientDNA); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListClientDNAs(service dna.DNAService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dnas, err := service.ListActiveDNAs()
		if err != nil {
			logrus.Error("Error listing client DNAs:", err)
			writeDNAError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(dnas); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetClientDNA(service dna.DNAService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do DNA é obrigatório", nil)
			return
		}

		clientDNA, err := service.GetDNA(id)
		if err != nil {
			logrus.Error("Error getting client DNA:", err)
			writeDNAError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(clientDNA); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateClientDNA(service dna.DNAService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateClientDNA")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do DNA é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateClientDNARequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		clientDNA, err := service.UpdateDNA(&updateRequest)
		if err != nil {
			logrus.Error("Error updating client DNA:", err)
			writeDNAError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(clientDNA); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeactivateClientDNA(service dna.DNAService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeactivateClientDNA")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do DNA é obrigatório", nil)
			return
		}

		if err := service.DeactivateDNA(id); err != nil {
			logrus.Error("Error deactivating client DNA:", err)
			writeDNAError(w, err)
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

// writeDNAError traduz erros do caso de uso de DNA para a resposta da API
func writeDNAError(w http.ResponseWriter, err error) {
	// Verificar se é um DNAError para obter detalhes específicos do erro
	var dnaErr *dna.DNAError
	if errors.As(err, &dnaErr) {
		var details any
		if dnaErr.DNAID != "" {
			details = map[string]any{"dna_id": dnaErr.DNAID}
		}
		apiErrors.WriteError(w, dnaErr.Code, dnaErr.Error(), details)
		return
	}

	// Caso não seja um DNAError específico, verificar erros comuns
	switch {
	case errors.Is(err, dna.ErrDNANotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "DNA não encontrado", nil)

	case errors.Is(err, dna.ErrMissingRequiredFields):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes", nil)

	case errors.Is(err, dna.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar DNA", nil)
	}
}
