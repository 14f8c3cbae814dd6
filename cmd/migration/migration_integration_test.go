//go:build integration

package migration_test

import (
	"context"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/toko-api/cmd/config"
	"github.com/muhammadheryan/toko-api/cmd/migration"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/repository/dberr"
	pembelirepo "github.com/muhammadheryan/toko-api/repository/pembeli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

// startMySQL starts a MySQL container and returns a config pointing at it.
func startMySQL(t *testing.T) *config.Config {
	t.Helper()
	ctx := context.Background()

	container, err := mysql.Run(ctx,
		"mysql:8.0",
		mysql.WithDatabase("toko"),
		mysql.WithUsername("toko"),
		mysql.WithPassword("toko"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "3306/tcp")
	require.NoError(t, err)

	return &config.Config{Database: config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "toko",
		Password: "toko",
		Name:     "toko",
	}}
}

func TestMigrator_Integration_UpDown(t *testing.T) {
	cfg := startMySQL(t)

	m, err := migration.NewMigrator(cfg)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)
	assert.False(t, dirty)

	// a second run is a no-op
	require.NoError(t, m.Up())

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	repo := pembelirepo.NewPembeliRepository(db)

	_, err = repo.Create(ctx, &model.PembeliEntity{Nama: "Ani", Email: "ani@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.PembeliEntity{Nama: "Ani", Email: "ani@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, dberr.ErrDuplicate)

	// email uniqueness is exact, no case folding
	_, err = repo.Create(ctx, &model.PembeliEntity{Nama: "Ani", Email: "ANI@example.com", PasswordHash: "x"})
	assert.NoError(t, err)

	got, err := repo.Get(ctx, &model.PembeliFilter{Email: "Ani@Example.com"})
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, m.Down())
	version, _, err = m.Version()
	require.NoError(t, err)
	assert.Zero(t, version)
}
