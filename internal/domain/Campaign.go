package domain

import (
	"encoding/json"
	"time"
)

// Objective é o objetivo de marketing de uma campanha
type Objective string

const (
	ObjectiveAwareness  Objective = "awareness"
	ObjectiveEngagement Objective = "engagement"
	ObjectiveConversion Objective = "conversion"
	ObjectiveLeads      Objective = "leads"
)

// Platform identifica uma rede de veiculação suportada
type Platform string

const (
	PlatformMeta     Platform = "meta"
	PlatformLinkedIn Platform = "linkedin"
	PlatformYouTube  Platform = "youtube"
	PlatformGoogle   Platform = "google"
	PlatformTwitter  Platform = "twitter"
	PlatformTikTok   Platform = "tiktok"
)

// Status padrão de campanhas
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

// MaxContentPillars limita a quantidade de pilares de conteúdo por campanha
const MaxContentPillars = 5

// DateRange é o período de veiculação da campanha (Start <= End)
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// UnmarshalJSON aceita datas RFC3339 ou somente data (2006-01-02),
// formato enviado pelos formulários do web-client
func (d *DateRange) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := parseDate(raw.Start)
	if err != nil {
		return err
	}

	end, err := parseDate(raw.End)
	if err != nil {
		return err
	}

	d.Start = start
	d.End = end

	return nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return date, nil
	}

	return time.Parse(time.DateOnly, value)
}

// KPITarget é uma meta numérica com unidade para um indicador
type KPITarget struct {
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
}

type Budget struct {
	Total    float64  `json:"total"`
	Currency string   `json:"currency"`
	Daily    *float64 `json:"daily,omitempty"`
}

// Campaign é uma campanha planejada, derivada de um ClientDNA.
// A campanha guarda apenas o ID do DNA; o snapshot atual do perfil
// é resolvido na leitura e pode diferir do usado na criação
type Campaign struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Objective      Objective            `json:"objective"`
	ClientDNAID    string               `json:"clientDnaId"`
	Platforms      []Platform           `json:"platforms"`
	ContentPillars []string             `json:"contentPillars"`
	DateRange      DateRange            `json:"dateRange"`
	KPIs           map[string]KPITarget `json:"kpis"`
	Budget         *Budget              `json:"budget,omitempty"`
	Status         string               `json:"status"`
	Active         bool                 `json:"isActive"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// CampaignResponse agrega a campanha ao snapshot atual do DNA do cliente
type CampaignResponse struct {
	Campaign
	ClientDNA *ClientDNA `json:"clientDna,omitempty"`
}

// CreateCampaignRequest é o payload de criação de campanhas. ContentPillars
// e KPIs são opcionais; quando ausentes são gerados a partir do DNA
type CreateCampaignRequest struct {
	Name           string               `json:"name"`
	Objective      Objective            `json:"objective"`
	ClientDNAID    string               `json:"clientDnaId"`
	Platforms      []Platform           `json:"platforms"`
	ContentPillars []string             `json:"contentPillars"`
	DateRange      DateRange            `json:"dateRange"`
	KPIs           map[string]KPITarget `json:"kpis"`
	Budget         *Budget              `json:"budget"`
}

// UpdateCampaignRequest é um patch parcial; não há nova geração de
// pilares ou KPIs na atualização
type UpdateCampaignRequest struct {
	ID             string               `json:"id"`
	Name           *string              `json:"name"`
	Objective      *Objective           `json:"objective"`
	Platforms      []Platform           `json:"platforms"`
	ContentPillars []string             `json:"contentPillars"`
	DateRange      *DateRange           `json:"dateRange"`
	KPIs           map[string]KPITarget `json:"kpis"`
	Budget         *Budget              `json:"budget"`
	Status         *string              `json:"status"`
}
