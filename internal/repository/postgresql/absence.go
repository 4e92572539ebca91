package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/absence"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

func (r *absenceRepositoryImpl) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO permisos (id, trabajador_id, obra_id, fecha, horas, motivo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.WorkerID, a.SiteID, a.Date, a.Hours, a.Reason,
	).Scan(&a.CreatedAt)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return a, nil
}

func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, trabajador_id, obra_id, fecha, horas, motivo, created_at
		FROM permisos
		WHERE id = $1
	`

	var a absence.Absence
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.WorkerID, &a.SiteID, &a.Date, &a.Hours, &a.Reason, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, err
	}

	return a, nil
}

func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM permisos
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

func (r *absenceRepositoryImpl) ListByWorkerAndRange(ctx context.Context, workerID, siteID, from, to string) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, trabajador_id, obra_id, fecha, horas, motivo, created_at
		FROM permisos
		WHERE trabajador_id = $1 AND obra_id = $2 AND fecha BETWEEN $3 AND $4
		ORDER BY fecha ASC
	`

	rows, err := q.Query(ctx, query, workerID, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		err := rows.Scan(&a.ID, &a.WorkerID, &a.SiteID, &a.Date, &a.Hours, &a.Reason, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return absences, nil
}

func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.AbsenceFilter) ([]absence.Absence, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM permisos p
		INNER JOIN trabajadores t ON p.trabajador_id = t.id
		INNER JOIN obras o ON p.obra_id = o.id
	`

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("p.trabajador_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	if filter.SiteID != nil && *filter.SiteID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("p.obra_id = $%d", argIdx))
		args = append(args, *filter.SiteID)
		argIdx++
	}

	if filter.From != nil && *filter.From != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("p.fecha >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil && *filter.To != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("p.fecha <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	whereClause := " WHERE " + strings.Join(whereClauses, " AND ")

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count absences: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT p.id, p.trabajador_id, p.obra_id, p.fecha, p.horas, p.motivo, p.created_at,
		       t.nombre_completo as trabajador_nombre,
		       o.nombre as obra_nombre
		%s
		%s
		ORDER BY p.fecha DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		var workerName, siteName string

		err := rows.Scan(
			&a.ID, &a.WorkerID, &a.SiteID, &a.Date, &a.Hours, &a.Reason, &a.CreatedAt,
			&workerName, &siteName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan absence: %w", err)
		}

		a.WorkerName = &workerName
		a.SiteName = &siteName
		absences = append(absences, a)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return absences, total, nil
}
