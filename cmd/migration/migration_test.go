package migration

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrate struct {
	upErr, downErr, versionErr, forceErr error
	version                              uint
	dirty                                bool
	forced                               int
	srcCloseErr, dbCloseErr              error
}

func (f *fakeMigrate) Up() error   { return f.upErr }
func (f *fakeMigrate) Down() error { return f.downErr }
func (f *fakeMigrate) Version() (uint, bool, error) {
	return f.version, f.dirty, f.versionErr
}
func (f *fakeMigrate) Force(v int) error {
	f.forced = v
	return f.forceErr
}
func (f *fakeMigrate) Close() (error, error) { return f.srcCloseErr, f.dbCloseErr }

func TestMigrator_Up(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "applied", err: nil},
		{name: "nothing to do", err: migrate.ErrNoChange},
		{name: "failure", err: errors.New("syntax error"), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := &Migrator{m: &fakeMigrate{upErr: tt.err, downErr: tt.err}}
			if tt.wantErr {
				assert.Error(t, m.Up())
				assert.Error(t, m.Down())
				return
			}
			assert.NoError(t, m.Up())
			assert.NoError(t, m.Down())
		})
	}
}

func TestMigrator_Version(t *testing.T) {
	m := &Migrator{m: &fakeMigrate{versionErr: migrate.ErrNilVersion}}
	v, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.False(t, dirty)

	m = &Migrator{m: &fakeMigrate{version: 3, dirty: true}}
	v, dirty, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(3), v)
	assert.True(t, dirty)
}

func TestMigrator_Force(t *testing.T) {
	f := &fakeMigrate{}
	m := &Migrator{m: f}

	assert.Error(t, m.Force(-1))
	require.NoError(t, m.Force(2))
	assert.Equal(t, 2, f.forced)
}

func TestMigrator_Close(t *testing.T) {
	assert.NoError(t, (&Migrator{m: &fakeMigrate{}}).Close())

	err := (&Migrator{m: &fakeMigrate{srcCloseErr: errors.New("src"), dbCloseErr: errors.New("db")}}).Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "src")
	assert.Contains(t, err.Error(), "db")
}

func TestEmbeddedMigrations_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestEmbeddedMigrations_Schema(t *testing.T) {
	pembelis, err := fs.ReadFile(migrationsFS, "migrations/000001_create_pembelis.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(pembelis), "COLLATE utf8mb4_bin")
	assert.Contains(t, string(pembelis), "UNIQUE KEY pembelis_email_unique (email)")

	tokens, err := fs.ReadFile(migrationsFS, "migrations/000003_create_personal_access_tokens.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(tokens), "token_hash CHAR(64) NOT NULL")
	assert.Contains(t, string(tokens), "ON DELETE CASCADE")
}
