//go:build integration

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"loyalty-wallet/internal/infra/db"
	"loyalty-wallet/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error

	testUser     = "test"
	testPassword = "testpass"
)

// NewPool starts (or reuses) the Postgres container, creates a fresh
// database for the caller and applies the migrations to it.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	startContainerOnce()
	require.NoError(t, containerErr, "failed to start postgres container")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port.Port())

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as admin")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	pool, closePool, err := db.Connect(ctx, config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.Migrate(ctx, pool), "failed to apply migrations")

	t.Cleanup(func() {
		closePool()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()
		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return pool
}

func startContainerOnce() {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{
					"/var/lib/postgresql/data": "rw,size=256m",
				},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
						testUser, testPassword, host, port.Port())
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "integration-tests"},
			},
			Started: true,
		})
	})
}
