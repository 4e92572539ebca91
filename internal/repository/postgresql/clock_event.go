package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/attendance"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
)

type clockEventRepositoryImpl struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) attendance.ClockEventRepository {
	return &clockEventRepositoryImpl{db: db}
}

func (r *clockEventRepositoryImpl) Create(ctx context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	query := `
		INSERT INTO marcas (
			id, trabajador_id, obra_id, tipo, registrado_en,
			latitud, longitud, distancia_metros, dentro_radio,
			fecha, justificacion, turno, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, NOW()
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID, event.WorkerID, event.SiteID, event.Kind, event.Timestamp,
		event.Latitude, event.Longitude, event.DistanceMeters, event.WithinFence,
		event.Day, event.Justification, event.Shift,
	).Scan(&event.CreatedAt)
	if err != nil {
		return attendance.ClockEvent{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return event, nil
}

func (r *clockEventRepositoryImpl) HasEventForDay(ctx context.Context, workerID string, day string, kind attendance.EventKind) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM marcas
			WHERE trabajador_id = $1 AND fecha = $2 AND tipo = $3
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, workerID, day, kind).Scan(&exists)

	return exists, err
}

func (r *clockEventRepositoryImpl) ListByWorkerAndRange(ctx context.Context, workerID, siteID, from, to string) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	// fecha is canonical YYYY-MM-DD, so BETWEEN compares lexicographically
	query := `
		SELECT id, trabajador_id, obra_id, tipo, registrado_en,
		       latitud, longitud, distancia_metros, dentro_radio,
		       fecha, justificacion, turno, created_at
		FROM marcas
		WHERE trabajador_id = $1 AND obra_id = $2 AND fecha BETWEEN $3 AND $4
		ORDER BY registrado_en ASC
	`

	rows, err := q.Query(ctx, query, workerID, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query clock events: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var ev attendance.ClockEvent
		err := rows.Scan(
			&ev.ID, &ev.WorkerID, &ev.SiteID, &ev.Kind, &ev.Timestamp,
			&ev.Latitude, &ev.Longitude, &ev.DistanceMeters, &ev.WithinFence,
			&ev.Day, &ev.Justification, &ev.Shift, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

func (r *clockEventRepositoryImpl) List(ctx context.Context, filter attendance.EventFilter) ([]attendance.ClockEvent, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM marcas m
		INNER JOIN trabajadores t ON m.trabajador_id = t.id
		INNER JOIN obras o ON m.obra_id = o.id
	`

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("m.trabajador_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	if filter.SiteID != nil && *filter.SiteID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("m.obra_id = $%d", argIdx))
		args = append(args, *filter.SiteID)
		argIdx++
	}

	if filter.Kind != nil && *filter.Kind != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("m.tipo = $%d", argIdx))
		args = append(args, strings.ToLower(*filter.Kind))
		argIdx++
	}

	if filter.From != nil && *filter.From != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("m.fecha >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil && *filter.To != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("m.fecha <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	whereClause := " WHERE " + strings.Join(whereClauses, " AND ")

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clock events: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT m.id, m.trabajador_id, m.obra_id, m.tipo, m.registrado_en,
		       m.latitud, m.longitud, m.distancia_metros, m.dentro_radio,
		       m.fecha, m.justificacion, m.turno, m.created_at,
		       t.nombre_completo as trabajador_nombre,
		       o.nombre as obra_nombre
		%s
		%s
		ORDER BY m.registrado_en ASC
		LIMIT $%d OFFSET $%d
	`, baseQuery, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query clock events: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var ev attendance.ClockEvent
		var workerName, siteName string

		err := rows.Scan(
			&ev.ID, &ev.WorkerID, &ev.SiteID, &ev.Kind, &ev.Timestamp,
			&ev.Latitude, &ev.Longitude, &ev.DistanceMeters, &ev.WithinFence,
			&ev.Day, &ev.Justification, &ev.Shift, &ev.CreatedAt,
			&workerName, &siteName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan clock event: %w", err)
		}

		ev.WorkerName = &workerName
		ev.SiteName = &siteName
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, total, nil
}
