package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/repository/database"
)

var _ database.ObserverDirectory = (*ObserverRepo)(nil)

const observerColumns = `identity, email, latitude, longitude, reported_at, subscribed`

type ObserverRepo struct {
	db *sql.DB
}

func NewObserverRepo(db *sql.DB) *ObserverRepo {
	return &ObserverRepo{db: db}
}

func (r *ObserverRepo) FindByIdentity(ctx context.Context, identity string) (*domain.Observer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+observerColumns+` FROM observers WHERE identity = $1`,
		identity,
	)

	obs, err := scanObserver(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return obs, nil
}

func (r *ObserverRepo) FindSubscribed(ctx context.Context) ([]domain.Observer, error) {
	return r.queryObservers(ctx,
		`SELECT `+observerColumns+` FROM observers WHERE subscribed = TRUE`,
	)
}

func (r *ObserverRepo) FindAll(ctx context.Context) ([]domain.Observer, error) {
	return r.queryObservers(ctx,
		`SELECT `+observerColumns+` FROM observers ORDER BY identity`,
	)
}

func (r *ObserverRepo) UpdateLocation(ctx context.Context, identity, lat, lon string, reportedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE observers SET latitude = $2, longitude = $3, reported_at = $4 WHERE identity = $1`,
		identity, lat, lon, reportedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ObserverRepo) UpdateSubscription(ctx context.Context, identity string, subscribed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE observers SET subscribed = $2 WHERE identity = $1`,
		identity, subscribed,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ObserverRepo) queryObservers(ctx context.Context, query string) ([]domain.Observer, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Observer
	for rows.Next() {
		obs, err := scanObserver(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *obs)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObserver(row scanner) (*domain.Observer, error) {
	var (
		obs        domain.Observer
		email      sql.NullString
		lat        sql.NullString
		lon        sql.NullString
		reportedAt sql.NullTime
	)
	if err := row.Scan(&obs.Identity, &email, &lat, &lon, &reportedAt, &obs.Subscribed); err != nil {
		return nil, err
	}
	if email.Valid {
		obs.Email = &email.String
	}
	if lat.Valid {
		obs.Lat = &lat.String
	}
	if lon.Valid {
		obs.Lon = &lon.String
	}
	if reportedAt.Valid {
		obs.ReportedAt = &reportedAt.Time
	}
	return &obs, nil
}

// requireRow maps an update that matched nothing onto sql.ErrNoRows so
// handlers can answer 404.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
