package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.Equal(t, 10*time.Minute, cfg.Database.Pool.ConnMaxLifetime)
}

func TestLoadFromYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	yml := `
server:
  addr: ":9090"
logging:
  level: debug
database:
  host: db
  port: 3307
  name: shop
  pool:
    conn_max_lifetime: 2m
pagination:
  default_page_size: 5
  max_page_size: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(yml), 0o644))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.Pool.MaxOpen)
	assert.Equal(t, 2*time.Minute, cfg.Database.Pool.ConnMaxLifetime)
	assert.Equal(t, 5, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("server: ["), 0o644))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestFormatDSN(t *testing.T) {
	d := Defaults().Database
	d.Password = "secret"
	d.Params = "collation=utf8mb4_unicode_ci"

	dsn, err := d.FormatDSN()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dsn, "root:secret@tcp(127.0.0.1:3306)/bespoked_bikes?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "collation=utf8mb4_unicode_ci")
}

func TestFormatDSNForcesParseTime(t *testing.T) {
	d := DatabaseConfig{DSN: "app:pw@tcp(db:3306)/shop"}

	dsn, err := d.FormatDSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "app:pw@tcp(db:3306)/shop")
}

func TestFormatDSNDefaultsToLocalTime(t *testing.T) {
	d := DatabaseConfig{DSN: "app:pw@tcp(db:3306)/shop?charset=utf8mb4"}

	dsn, err := d.FormatDSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "loc=Local")

	d.DSN = "app:pw@tcp(db:3306)/shop?loc=UTC"
	dsn, err = d.FormatDSN()
	require.NoError(t, err)
	assert.NotContains(t, dsn, "loc=")
}
