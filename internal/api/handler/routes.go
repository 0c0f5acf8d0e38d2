package handler

import (
	"net/http"

	"github.com/vfg2006/client-dna-api/internal/api/handler/router"
	"github.com/vfg2006/client-dna-api/internal/usecases/campaign"
	"github.com/vfg2006/client-dna-api/internal/usecases/dna"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func ClientDNAs(service dna.DNAService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dna",
			Method:  http.MethodPost,
			Handler: CreateClientDNA(service),
		},
		{
			Path:    "/v1/dna",
			Method:  http.MethodGet,
			Handler: ListClientDNAs(service),
		},
		{
			Path:    "/v1/dna/:id",
			Method:  http.MethodGet,
			Handler: GetClientDNA(service),
		},
		{
			Path:    "/v1/dna/:id",
			Method:  http.MethodPut,
			Handler: UpdateClientDNA(service),
		},
		{
			Path:    "/v1/dna/:id",
			Method:  http.MethodDelete,
			Handler: DeactivateClientDNA(service),
		},
	}
}

func Campaigns(service campaign.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeactivateCampaign(service),
		},
		{
			Path:    "/v1/dna/:id/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaignsByDNA(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
