package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/client-dna-api/infrastructure/database/postgres"
	"github.com/vfg2006/client-dna-api/internal/domain"
)

const clientDNATable = "client_dna"

var clientDNAColumns = []string{
	"id",
	"client_name",
	"industry",
	"brand_tone",
	"target_audience",
	"geography",
	"psychographics",
	"products",
	"competitors",
	"version",
	"active",
	"created_at",
	"updated_at",
}

type ClientDNARepository interface {
	Insert(dna *domain.ClientDNA) error
	GetByID(id string) (*domain.ClientDNA, error)
	ListActive() ([]*domain.ClientDNA, error)
	Update(dna *domain.ClientDNA) error
	Deactivate(id string) error
}

type clientDNARepository struct {
	conn *postgres.Connection
}

func NewClientDNARepository(conn *postgres.Connection) ClientDNARepository {
	return &clientDNARepository{
		conn: conn,
	}
}

func (r *clientDNARepository) Insert(dna *domain.ClientDNA) error {
	targetAudience, geography, psychographics, products, competitors, err := serializeDNABlocks(dna)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(clientDNATable).
		Columns(clientDNAColumns...).
		Values(
			dna.ID,
			dna.ClientName,
			dna.Industry,
			dna.BrandTone,
			targetAudience,
			geography,
			psychographics,
			products,
			competitors,
			dna.Version,
			dna.Active,
			dna.CreatedAt,
			dna.UpdatedAt,
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

func (r *clientDNARepository) GetByID(id string) (*domain.ClientDNA, error) {
	query, args, err := squirrel.
		Select(clientDNAColumns...).
		From(clientDNATable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	row := r.conn.QueryRow(query, args...)

	dna, err := deserializeClientDNA(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return dna, nil
}

func (r *clientDNARepository) ListActive() ([]*domain.ClientDNA, error) {
	query, args, err := squirrel.
		Select(clientDNAColumns...).
		From(clientDNATable).
		Where(squirrel.Eq{"active": true}).
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

	dnas := make([]*domain.ClientDNA, 0)

	for rows.Next() {
		dna, err := deserializeClientDNA(rows.Scan)
		if err != nil {
			return nil, err
		}

		dnas = append(dnas, dna)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre os resultados")
	}

	return dnas, nil
}

// Update persiste a nova versão do DNA. O incremento de versão é
// responsabilidade do caso de uso; aqui a linha é gravada como está
func (r *clientDNARepository) Update(dna *domain.ClientDNA) error {
	targetAudience, geography, psychographics, products, competitors, err := serializeDNABlocks(dna)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(clientDNATable).
		Set("client_name", dna.ClientName).
		Set("industry", dna.Industry).
		Set("brand_tone", dna.BrandTone).
		Set("target_audience", targetAudience).
		Set("geography", geography).
		Set("psychographics", psychographics).
		Set("products", products).
		Set("competitors", competitors).
		Set("version", dna.Version).
		Set("updated_at", dna.UpdatedAt).
		Where(squirrel.Eq{"id": dna.ID}).
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

// Deactivate marca o DNA como inativo sem removê-lo fisicamente
func (r *clientDNARepository) Deactivate(id string) error {
	query, args, err := squirrel.
		Update(clientDNATable).
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

func serializeDNABlocks(dna *domain.ClientDNA) ([]byte, []byte, []byte, []byte, []byte, error) {
	targetAudience, err := json.Marshal(dna.TargetAudience)
	if err != nil {
		return nil, nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar target_audience")
	}

	geography, err := json.Marshal(dna.Geography)
	if err != nil {
		return nil, nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar geography")
	}

	psychographics, err := json.Marshal(dna.Psychographics)
	if err != nil {
		return nil, nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar psychographics")
	}

	var products []byte
	if dna.Products != nil {
		products, err = json.Marshal(dna.Products)
		if err != nil {
			return nil, nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar products")
		}
	}

	var competitors []byte
	if dna.Competitors != nil {
		competitors, err = json.Marshal(dna.Competitors)
		if err != nil {
			return nil, nil, nil, nil, nil, errors.Wrap(err, "erro ao serializar competitors")
		}
	}

	return targetAudience, geography, psychographics, products, competitors, nil
}

func deserializeClientDNA(scan func(dest ...interface{}) error) (*domain.ClientDNA, error) {
	dna := &domain.ClientDNA{}

	var targetAudience, geography, psychographics []byte
	var products, competitors []byte

	if err := scan(
		&dna.ID,
		&dna.ClientName,
		&dna.Industry,
		&dna.BrandTone,
		&targetAudience,
		&geography,
		&psychographics,
		&products,
		&competitors,
		&dna.Version,
		&dna.Active,
		&dna.CreatedAt,
		&dna.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(targetAudience, &dna.TargetAudience); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar target_audience")
	}

	if err := json.Unmarshal(geography, &dna.Geography); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar geography")
	}

	if err := json.Unmarshal(psychographics, &dna.Psychographics); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar psychographics")
	}

	if len(products) > 0 {
		if err := json.Unmarshal(products, &dna.Products); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar products")
		}
	}

	if len(competitors) > 0 {
		if err := json.Unmarshal(competitors, &dna.Competitors); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar competitors")
		}
	}

	return dna, nil
}
