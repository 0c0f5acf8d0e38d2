package campaign

import (
	"fmt"

	"github.com/vfg2006/client-dna-api/internal/domain"
)

// Pilares base por objetivo. A ordem das entradas é parte do contrato
// da geração e não deve ser alterada
var objectivePillars = map[domain.Objective][]string{
	domain.ObjectiveAwareness:  {"Brand Story", "Educational Content", "Industry Insights"},
	domain.ObjectiveEngagement: {"Behind the Scenes", "User Stories", "Interactive Content"},
	domain.ObjectiveConversion: {"Product Benefits", "Case Studies", "Limited Offers"},
	domain.ObjectiveLeads:      {"Free Resources", "Webinars", "Expert Tips"},
}

// Metas de KPI por objetivo
var objectiveKPIs = map[domain.Objective]map[string]domain.KPITarget{
	domain.ObjectiveAwareness: {
		"reach":           {Target: 50000, Unit: "impressions"},
		"engagement_rate": {Target: 3.5, Unit: "percentage"},
		"brand_mentions":  {Target: 100, Unit: "count"},
	},
	domain.ObjectiveEngagement: {
		"likes":           {Target: 2000, Unit: "count"},
		"comments":        {Target: 500, Unit: "count"},
		"shares":          {Target: 300, Unit: "count"},
		"engagement_rate": {Target: 5, Unit: "percentage"},
	},
	domain.ObjectiveConversion: {
		"conversions":         {Target: 200, Unit: "count"},
		"conversion_rate":     {Target: 2.5, Unit: "percentage"},
		"cost_per_conversion": {Target: 25, Unit: "currency"},
	},
	domain.ObjectiveLeads: {
		"leads":              {Target: 500, Unit: "count"},
		"cost_per_lead":      {Target: 15, Unit: "currency"},
		"lead_quality_score": {Target: 7.5, Unit: "score"},
	},
}

// generateContentPillars monta os pilares de conteúdo de uma campanha a
// partir do objetivo, das plataformas e do DNA do cliente. A função é
// determinística: pilares base do objetivo, pilar do segmento do cliente
// e pilares por plataforma, truncados em MaxContentPillars entradas.
// Objetivos desconhecidos usam os pilares de awareness
func generateContentPillars(objective domain.Objective, platforms []domain.Platform, clientDNA *domain.ClientDNA) []string {
	base, ok := objectivePillars[objective]
	if !ok {
		base = objectivePillars[domain.ObjectiveAwareness]
	}

	pillars := make([]string, 0, len(base)+3)
	pillars = append(pillars, base...)

	// Pilar específico do segmento do cliente
	pillars = append(pillars, fmt.Sprintf("%s Trends", clientDNA.Industry))

	// Pilares específicos de plataforma
	if hasPlatform(platforms, domain.PlatformYouTube) {
		pillars = append(pillars, "Video Tutorials")
	}

	if hasPlatform(platforms, domain.PlatformLinkedIn) {
		pillars = append(pillars, "Professional Insights")
	}

	if len(pillars) > domain.MaxContentPillars {
		pillars = pillars[:domain.MaxContentPillars]
	}

	return pillars
}

// generateKPIs retorna as metas de KPI fixas para o objetivo.
// Objetivos desconhecidos usam as metas de awareness
func generateKPIs(objective domain.Objective) map[string]domain.KPITarget {
	table, ok := objectiveKPIs[objective]
	if !ok {
		table = objectiveKPIs[domain.ObjectiveAwareness]
	}

	kpis := make(map[string]domain.KPITarget, len(table))
	for name, target := range table {
		kpis[name] = target
	}

	return kpis
}

func hasPlatform(platforms []domain.Platform, platform domain.Platform) bool {
	for _, p := range platforms {
		if p == platform {
			return true
		}
	}
	return false
}
