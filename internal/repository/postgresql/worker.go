package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	query := `
		INSERT INTO trabajadores (id, rut, nombre_completo, telefono, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.ID, w.RUT, w.FullName, w.Phone, w.Active,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, rut, nombre_completo, telefono, activo, created_at, updated_at
		FROM trabajadores
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.RUT, &w.FullName, &w.Phone, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	return w, nil
}

func (r *workerRepositoryImpl) GetByRUT(ctx context.Context, rut string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, rut, nombre_completo, telefono, activo, created_at, updated_at
		FROM trabajadores
		WHERE rut = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, rut).Scan(
		&w.ID, &w.RUT, &w.FullName, &w.Phone, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	return w, nil
}

func (r *workerRepositoryImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("nombre_completo = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Phone != nil {
		updates = append(updates, fmt.Sprintf("telefono = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Active != nil {
		updates = append(updates, fmt.Sprintf("activo = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for worker update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	sql := "UPDATE trabajadores SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to update worker with id %s: %w", req.ID, err)
	}
	return nil
}

func (r *workerRepositoryImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("nombre_completo ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	if filter.Active != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("activo = $%d", argIdx))
		args = append(args, *filter.Active)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM trabajadores WHERE %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT id, rut, nombre_completo, telefono, activo, created_at, updated_at
		FROM trabajadores
		WHERE %s
		ORDER BY nombre_completo ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(&w.ID, &w.RUT, &w.FullName, &w.Phone, &w.Active, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, total, nil
}
