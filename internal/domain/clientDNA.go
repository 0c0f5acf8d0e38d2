package domain

import "time"

// UrbanRural classifica o tipo de área geográfica do público alvo
type UrbanRural string

const (
	UrbanArea     UrbanRural = "urban"
	SemiUrbanArea UrbanRural = "semi-urban"
	RuralArea     UrbanRural = "rural"
)

// TargetAudience descreve o público alvo de um cliente
type TargetAudience struct {
	AgeRange   string   `json:"ageRange"`
	Gender     string   `json:"gender"`
	Interests  []string `json:"interests"`
	PainPoints []string `json:"painPoints"`
}

// Geography descreve a área de atuação do cliente
type Geography struct {
	Country    string     `json:"country"`
	State      *string    `json:"state,omitempty"`
	City       *string    `json:"city,omitempty"`
	UrbanRural UrbanRural `json:"urbanRural"`
}

// Psychographics descreve o perfil comportamental do público do cliente
type Psychographics struct {
	Values         []string `json:"values"`
	Lifestyle      string   `json:"lifestyle"`
	BuyingBehavior string   `json:"buyingBehavior"`
}

type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       *string `json:"price,omitempty"`
}

// ClientDNA é o perfil versionado de um cliente, usado como insumo
// para a geração de campanhas
type ClientDNA struct {
	ID             string         `json:"id"`
	ClientName     string         `json:"clientName"`
	Industry       string         `json:"industry"`
	BrandTone      string         `json:"brandTone"`
	TargetAudience TargetAudience `json:"targetAudience"`
	Geography      Geography      `json:"geography"`
	Psychographics Psychographics `json:"psychographics"`
	Products       []Product      `json:"products,omitempty"`
	Competitors    []string       `json:"competitors,omitempty"`
	Version        int            `json:"version"`
	Active         bool           `json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreateClientDNARequest é o payload de criação de um novo DNA
type CreateClientDNARequest struct {
	ClientName     string          `json:"clientName"`
	Industry       string          `json:"industry"`
	BrandTone      string          `json:"brandTone"`
	TargetAudience *TargetAudience `json:"targetAudience"`
	Geography      *Geography      `json:"geography"`
	Psychographics *Psychographics `json:"psychographics"`
	Products       []Product       `json:"products"`
	Competitors    []string        `json:"competitors"`
}

// UpdateClientDNARequest é um patch parcial; apenas os campos não nulos
// são aplicados sobre a versão atual
type UpdateClientDNARequest struct {
	ID             string          `json:"id"`
	ClientName     *string         `json:"clientName"`
	Industry       *string         `json:"industry"`
	BrandTone      *string         `json:"brandTone"`
	TargetAudience *TargetAudience `json:"targetAudience"`
	Geography      *Geography      `json:"geography"`
	Psychographics *Psychographics `json:"psychographics"`
	Products       []Product       `json:"products"`
	Competitors    []string        `json:"competitors"`
}
