package assets

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrTagConflict   = errors.New("asset tag already in use")
)

type AssetRepository interface {
	ListAssets(ctx context.Context) ([]Asset, error)
	GetAssetByID(ctx context.Context, id int64) (Asset, error)
	GetAssetByTag(ctx context.Context, tag string) (Asset, error)
	CreateAsset(ctx context.Context, input Asset) (Asset, error)
	CreateAssets(ctx context.Context, inputs []Asset) ([]Asset, error)
	UpdateAsset(ctx context.Context, input Asset) (Asset, error)
	DeleteAsset(ctx context.Context, id int64) (bool, error)
}

type postgresAssetRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &postgresAssetRepository{pool: pool}
}

const assetColumns = "id, name, type, tag, serial_number, cost, acquisition_date, created_at"

func scanAsset(row pgx.Row) (Asset, error) {
	var a Asset
	var acquired *time.Time
	if err := row.Scan(&a.ID, &a.Name, &a.Type, &a.Tag, &a.SerialNumber, &a.Cost, &acquired, &a.CreatedAt); err != nil {
		return Asset{}, err
	}
	if acquired != nil {
		a.AcquisitionDate = acquired.Format(dateLayout)
	}
	return a, nil
}

// acquisitionParam turns the model's date string into a NULLable query
// parameter. Inputs are validated before they reach the repository.
func acquisitionParam(a Asset) any {
	if a.AcquisitionDate == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, a.AcquisitionDate)
	if err != nil {
		return nil
	}
	return t
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *postgresAssetRepository) ListAssets(ctx context.Context) ([]Asset, error) {
	query := `SELECT ` + assetColumns + `
              FROM assets
              ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *postgresAssetRepository) GetAssetByID(ctx context.Context, id int64) (Asset, error) {
	query := `SELECT ` + assetColumns + `
              FROM assets
              WHERE id = $1`

	a, err := scanAsset(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Asset{}, ErrAssetNotFound
		}
		return Asset{}, err
	}
	return a, nil
}

func (r *postgresAssetRepository) GetAssetByTag(ctx context.Context, tag string) (Asset, error) {
	query := `SELECT ` + assetColumns + `
              FROM assets
              WHERE tag = $1`

	a, err := scanAsset(r.pool.QueryRow(ctx, query, tag))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Asset{}, ErrAssetNotFound
		}
		return Asset{}, err
	}
	return a, nil
}

func (r *postgresAssetRepository) CreateAsset(ctx context.Context, input Asset) (Asset, error) {
	query := `INSERT INTO assets (name, type, tag, serial_number, cost, acquisition_date, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW())
              RETURNING ` + assetColumns

	row := r.pool.QueryRow(ctx, query, input.Name, input.Type, input.Tag, input.SerialNumber, input.Cost, acquisitionParam(input))

	created, err := scanAsset(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Asset{}, ErrTagConflict
		}
		return Asset{}, err
	}
	return created, nil
}

// CreateAssets inserts each asset in order. The batch is not atomic: on
// failure it returns whatever was inserted so far alongside the error.
func (r *postgresAssetRepository) CreateAssets(ctx context.Context, inputs []Asset) ([]Asset, error) {
	created := make([]Asset, 0, len(inputs))
	for _, input := range inputs {
		a, err := r.CreateAsset(ctx, input)
		if err != nil {
			return created, err
		}
		created = append(created, a)
	}
	return created, nil
}

func (r *postgresAssetRepository) UpdateAsset(ctx context.Context, input Asset) (Asset, error) {
	query := `UPDATE assets
              SET name = $1, type = $2, tag = $3, serial_number = $4, cost = $5, acquisition_date = $6
              WHERE id = $7
              RETURNING ` + assetColumns

	row := r.pool.QueryRow(ctx, query, input.Name, input.Type, input.Tag, input.SerialNumber, input.Cost, acquisitionParam(input), input.ID)

	updated, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Asset{}, ErrAssetNotFound
		}
		if isUniqueViolation(err) {
			return Asset{}, ErrTagConflict
		}
		return Asset{}, err
	}
	return updated, nil
}

func (r *postgresAssetRepository) DeleteAsset(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM assets WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
