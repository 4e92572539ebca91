package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
)

type siteRepositoryImpl struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepositoryImpl{db: db}
}

func (r *siteRepositoryImpl) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO obras (id, nombre, latitud, longitud, radio_metros, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.Latitude, s.Longitude, s.RadiusMeters, s.Active,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s, nil
}

func (r *siteRepositoryImpl) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, nombre, latitud, longitud, radio_metros, activo, created_at, updated_at
		FROM obras
		WHERE id = $1
	`

	var s site.Site
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.RadiusMeters, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, err
	}

	return s, nil
}

func (r *siteRepositoryImpl) Update(ctx context.Context, req site.UpdateSiteRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("nombre = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Latitude != nil {
		updates = append(updates, fmt.Sprintf("latitud = $%d", argIdx))
		args = append(args, *req.Latitude)
		argIdx++
	}
	if req.Longitude != nil {
		updates = append(updates, fmt.Sprintf("longitud = $%d", argIdx))
		args = append(args, *req.Longitude)
		argIdx++
	}
	if req.RadiusMeters != nil {
		updates = append(updates, fmt.Sprintf("radio_metros = $%d", argIdx))
		args = append(args, *req.RadiusMeters)
		argIdx++
	}
	if req.Active != nil {
		updates = append(updates, fmt.Sprintf("activo = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for site update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	sql := "UPDATE obras SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.ErrSiteNotFound
		}
		return fmt.Errorf("failed to update site with id %s: %w", req.ID, err)
	}
	return nil
}

func (r *siteRepositoryImpl) List(ctx context.Context, filter site.SiteFilter) ([]site.Site, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("nombre ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	if filter.Active != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("activo = $%d", argIdx))
		args = append(args, *filter.Active)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM obras WHERE %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sites: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT id, nombre, latitud, longitud, radio_metros, activo, created_at, updated_at
		FROM obras
		WHERE %s
		ORDER BY nombre ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var s site.Site
		err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.RadiusMeters, &s.Active, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return sites, total, nil
}
