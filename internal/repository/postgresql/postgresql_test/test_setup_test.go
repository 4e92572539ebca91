package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/worker"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
)

var testDB *database.DB

// setupTestDB connects to the database named by TEST_DATABASE_URL. When the
// variable is unset the test is skipped, so the suite still runs on machines
// without Postgres.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	if testDB == nil {
		db, err := database.Connect(context.Background(), dsn)
		require.NoError(t, err, "failed to connect to test database")
		testDB = db
	}
	return testDB
}

// truncateTables wipes every table between tests.
func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tx, err := testDB.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	tables := []string{
		"marcas",
		"permisos",
		"obras",
		"trabajadores",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoErrorf(t, err, "failed to truncate table %s", table)
	}

	require.NoError(t, tx.Commit(ctx))
}

// createTestWorker inserts a worker row directly, bypassing the repositories
// under test.
func createTestWorker(t *testing.T, ctx context.Context, rut, name string) worker.Worker {
	t.Helper()

	var w worker.Worker
	err := testDB.QueryRow(ctx, `
		INSERT INTO trabajadores (id, rut, nombre_completo, activo, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, TRUE, NOW(), NOW())
		RETURNING id, rut, nombre_completo, telefono, activo, created_at, updated_at
	`, rut, name).Scan(
		&w.ID, &w.RUT, &w.FullName, &w.Phone, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	require.NoError(t, err)
	return w
}

// createTestSite inserts a site row directly.
func createTestSite(t *testing.T, ctx context.Context, name string) site.Site {
	t.Helper()

	var s site.Site
	err := testDB.QueryRow(ctx, `
		INSERT INTO obras (id, nombre, latitud, longitud, radio_metros, activo, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, -33.4489, -70.6693, 150, TRUE, NOW(), NOW())
		RETURNING id, nombre, latitud, longitud, radio_metros, activo, created_at, updated_at
	`, name).Scan(
		&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.RadiusMeters, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	require.NoError(t, err)
	return s
}

// ===== HELPER FUNCTIONS =====

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func float64Ptr(f float64) *float64 {
	return &f
}
