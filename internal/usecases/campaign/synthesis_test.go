package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/client-dna-api/internal/domain"
)

func TestGenerateContentPillars(t *testing.T) {
	technologyDNA := &domain.ClientDNA{
		ID:       "DNA001",
		Industry: "Technology",
	}

	tests := []struct {
		name      string
		objective domain.Objective
		platforms []domain.Platform
		clientDNA *domain.ClientDNA
		expected  []string
	}{
		{
			name:      "Awareness sem plataformas especiais - pilares base mais segmento",
			objective: domain.ObjectiveAwareness,
			platforms: []domain.Platform{domain.PlatformMeta},
			clientDNA: technologyDNA,
			expected:  []string{"Brand Story", "Educational Content", "Industry Insights", "Technology Trends"},
		},
		{
			name:      "Awareness com YouTube - inclui pilar de vídeo e fecha em cinco",
			objective: domain.ObjectiveAwareness,
			platforms: []domain.Platform{domain.PlatformMeta, domain.PlatformYouTube},
			clientDNA: technologyDNA,
			expected:  []string{"Brand Story", "Educational Content", "Industry Insights", "Technology Trends", "Video Tutorials"},
		},
		{
			name:      "Awareness com YouTube e LinkedIn - pilar profissional cortado pelo limite",
			objective: domain.ObjectiveAwareness,
			platforms: []domain.Platform{domain.PlatformYouTube, domain.PlatformLinkedIn},
			clientDNA: technologyDNA,
			expected:  []string{"Brand Story", "Educational Content", "Industry Insights", "Technology Trends", "Video Tutorials"},
		},
		{
			name:      "Engagement com LinkedIn - inclui pilar profissional",
			objective: domain.ObjectiveEngagement,
			platforms: []domain.Platform{domain.PlatformLinkedIn},
			clientDNA: technologyDNA,
			expected:  []string{"Behind the Scenes", "User Stories", "Interactive Content", "Technology Trends", "Professional Insights"},
		},
		{
			name:      "Conversion - pilares base do objetivo",
			objective: domain.ObjectiveConversion,
			platforms: []domain.Platform{domain.PlatformGoogle},
			clientDNA: &domain.ClientDNA{ID: "DNA002", Industry: "Healthcare"},
			expected:  []string{"Product Benefits", "Case Studies", "Limited Offers", "Healthcare Trends"},
		},
		{
			name:      "Leads - pilares base do objetivo",
			objective: domain.ObjectiveLeads,
			platforms: []domain.Platform{domain.PlatformMeta},
			clientDNA: technologyDNA,
			expected:  []string{"Free Resources", "Webinars", "Expert Tips", "Technology Trends"},
		},
		{
			name:      "Objetivo desconhecido - usa os pilares de awareness",
			objective: domain.Objective("retention"),
			platforms: []domain.Platform{domain.PlatformMeta},
			clientDNA: technologyDNA,
			expected:  []string{"Brand Story", "Educational Content", "Industry Insights", "Technology Trends"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pillars := generateContentPillars(tt.objective, tt.platforms, tt.clientDNA)

			assert.Equal(t, tt.expected, pillars)
			assert.LessOrEqual(t, len(pillars), domain.MaxContentPillars)
		})
	}
}

func TestGenerateContentPillarsIsDeterministic(t *testing.T) {
	clientDNA := &domain.ClientDNA{ID: "DNA001", Industry: "Retail"}
	platforms := []domain.Platform{domain.PlatformYouTube, domain.PlatformLinkedIn}

	first := generateContentPillars(domain.ObjectiveEngagement, platforms, clientDNA)
	second := generateContentPillars(domain.ObjectiveEngagement, platforms, clientDNA)

	assert.Equal(t, first, second)
}

func TestGenerateKPIs(t *testing.T) {
	tests := []struct {
		name      string
		objective domain.Objective
		expected  map[string]domain.KPITarget
	}{
		{
			name:      "Awareness - metas de alcance",
			objective: domain.ObjectiveAwareness,
			expected: map[string]domain.KPITarget{
				"reach":           {Target: 50000, Unit: "impressions"},
				"engagement_rate": {Target: 3.5, Unit: "percentage"},
				"brand_mentions":  {Target: 100, Unit: "count"},
			},
		},
		{
			name:      "Engagement - metas de interação",
			objective: domain.ObjectiveEngagement,
			expected: map[string]domain.KPITarget{
				"likes":           {Target: 2000, Unit: "count"},
				"comments":        {Target: 500, Unit: "count"},
				"shares":          {Target: 300, Unit: "count"},
				"engagement_rate": {Target: 5, Unit: "percentage"},
			},
		},
		{
			name:      "Conversion - metas de conversão",
			objective: domain.ObjectiveConversion,
			expected: map[string]domain.KPITarget{
				"conversions":         {Target: 200, Unit: "count"},
				"conversion_rate":     {Target: 2.5, Unit: "percentage"},
				"cost_per_conversion": {Target: 25, Unit: "currency"},
			},
		},
		{
			name:      "Leads - metas de geração de leads",
			objective: domain.ObjectiveLeads,
			expected: map[string]domain.KPITarget{
				"leads":              {Target: 500, Unit: "count"},
				"cost_per_lead":      {Target: 15, Unit: "currency"},
				"lead_quality_score": {Target: 7.5, Unit: "score"},
			},
		},
		{
			name:      "Objetivo desconhecido - usa as metas de awareness",
			objective: domain.Objective("retention"),
			expected: map[string]domain.KPITarget{
				"reach":           {Target: 50000, Unit: "impressions"},
				"engagement_rate": {Target: 3.5, Unit: "percentage"},
				"brand_mentions":  {Target: 100, Unit: "count"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kpis := generateKPIs(tt.objective)

			assert.Equal(t, tt.expected, kpis)
		})
	}
}

func TestGenerateKPIsReturnsCopy(t *testing.T) {
	kpis := generateKPIs(domain.ObjectiveLeads)
	kpis["leads"] = domain.KPITarget{Target: 1, Unit: "count"}

	fresh := generateKPIs(domain.ObjectiveLeads)

	assert.Equal(t, domain.KPITarget{Target: 500, Unit: "count"}, fresh["leads"])
}
