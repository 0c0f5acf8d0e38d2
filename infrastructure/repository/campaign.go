package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/client-dna-api/infrastructure/database/postgres"
	"github.com/vfg2006/client-dna-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id",
	"name",
	"objective",
	"client_dna_id",
	"platforms",
	"content_pillars",
	"date_start",
	"date_end",
	"kpis",
	"budget",
	"status",
	"active",
	"created_at",
	"updated_at",
}

type CampaignRepository interface {
	Insert(campaign *domain.Campaign) error
	GetByID(id string) (*domain.Campaign, error)
	ListActive() ([]*domain.Campaign, error)
	ListByClientDNA(clientDNAID string) ([]*domain.Campaign, error)
	ListExpired(reference time.Time, statuses []string) ([]*domain.Campaign, error)
	Update(campaign *domain.Campaign) error
	UpdateStatus(id string, status string) error
	Deactivate(id string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Insert(campaign *domain.Campaign) error {
	platforms, contentPillars, kpis, budget, err := serializeCampaignBlocks(campaign)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns(campaignColumns...).
		Values(
			campaign.ID,
			campaign.Name,
			campaign.Objective,
			campaign.ClientDNAID,
			platforms,
			contentPillars,
			campaign.DateRange.Start,
			campaign.DateRange.End,
			kpis,
			budget,
			campaign.Status,
			campaign.Active,
			campaign.CreatedAt,
			campaign.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "database error (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "failed to execute query")
	}

	return nil
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	row := r.conn.QueryRow(query, args...)

	campaign, err := deserializeCampaign(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) ListActive() ([]*domain.Campaign, error) {
	return r.list(squirrel.Eq{"active": true})
}

func (r *campaignRepository) ListByClientDNA(clientDNAID string) ([]*domain.Campaign, error) {
	return r.list(squirrel.Eq{"active": true, "client_dna_id": clientDNAID})
}

// ListExpired retorna campanhas ativas cujo período terminou antes da
// data de referência, filtradas pelos status informados
func (r *campaignRepository) ListExpired(reference time.Time, statuses []string) ([]*domain.Campaign, error) {
	return r.list(squirrel.And{
		squirrel.Eq{"active": true},
		squirrel.Eq{"status": statuses},
		squirrel.Lt{"date_end": reference},
	})
}

func (r *campaignRepository) list(where squirrel.Sqlizer) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(where).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign, err := deserializeCampaign(rows.Scan)
		if err != nil {
			return nil, err
		}

		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre os resultados")
	}

	return campaigns, nil
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	platforms, contentPillars, kpis, budget, err := serializeCampaignBlocks(campaign)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(campaignsTable).
		Set("name", campaign.Name).
		Set("objective", campaign.Objective).
		Set("platforms", platforms).
		Set("content_pillars", contentPillars).
		Set("date_start", campaign.DateRange.Start).
		Set("date_end", campaign.DateRange.End).
		Set("kpis", kpis).
		Set("budget", budget).
		Set("status", campaign.Status).
		Set("updated_at", campaign.UpdatedAt).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "database error (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "failed to execute query")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error getting rows affected")
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *campaignRepository) UpdateStatus(id string, status string) error {
	query, args, err := squirrel.
		Update(campaignsTable).
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to execute query")
	}

	return nil
}

func (r *campaignRepository) Deactivate(id string) error {
	query, args, err := squirrel.
		Update(campaignsTable).
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to execute query")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error getting rows affected")
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func serializeCampaignBlocks(campaign *domain.Campaign) ([]byte, []byte, []byte, []byte, error) {
	platforms, err := json.Marshal(campaign.Platforms)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar platforms")
	}

	contentPillars, err := json.Marshal(campaign.ContentPillars)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar content_pillars")
	}

	kpis, err := json.Marshal(campaign.KPIs)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar kpis")
	}

	var budget []byte
	if campaign.Budget != nil {
		budget, err = json.Marshal(campaign.Budget)
		if err != nil {
			return nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar budget")
		}
	}

	return platforms, contentPillars, kpis, budget, nil
}

func deserializeCampaign(scan func(dest ...interface{}) error) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var platforms, contentPillars, kpis, budget []byte

	if err := scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Objective,
		&campaign.ClientDNAID,
		&platforms,
		&contentPillars,
		&campaign.DateRange.Start,
		&campaign.DateRange.End,
		&kpis,
		&budget,
		&campaign.Status,
		&campaign.Active,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(platforms, &campaign.Platforms); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar platforms")
	}

	if err := json.Unmarshal(contentPillars, &campaign.ContentPillars); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar content_pillars")
	}

	if err := json.Unmarshal(kpis, &campaign.KPIs); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar kpis")
	}

	if len(budget) > 0 {
		if err := json.Unmarshal(budget, &campaign.Budget); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar budget")
		}
	}

	return campaign, nil
}
