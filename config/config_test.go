package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: hazardmap-test
http:
  port: 9000
  cors:
    allowOrigins:
      - "https://map.example.jp/"
database:
  driver: sqlite
  sqlitePath: test.db
secretKey:
  access: yaml-secret
spatial:
  strategy: grid
  gridCellSizeMeters: 150
`

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("DATABASE_SQLITEPATH", "override.db")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, "hazardmap-test", cfg.Env.ServiceName)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	assert.Equal(t, "override.db", cfg.Database.SQLitePath)
	assert.Equal(t, []string{"https://map.example.jp"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, "grid", cfg.Spatial.Strategy)
	assert.InDelta(t, 150.0, cfg.Spatial.GridCellSizeMeters, 1e-9)

	// Sections absent from the YAML fall back to defaults.
	assert.InDelta(t, defaultMaxDistanceMeters, cfg.Risk.MaxDistanceMeters, 1e-9)
	assert.Equal(t, defaultShelterLimit, cfg.Shelters.DefaultLimit)
	assert.Equal(t, defaultMaxShelterLimit, cfg.Shelters.MaxLimit)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLitePath)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultLocale, cfg.Risk.DefaultLocale)
	assert.NotNil(t, cfg.Spatial)
	assert.NotNil(t, cfg.PubSub)
}

func TestCleanOrigins(t *testing.T) {
	got := CleanOrigins([]string{
		` "http://localhost:3000/" `,
		"https://a.example.jp,https://b.example.jp//",
		"",
		"'https://c.example.jp'",
	})

	assert.Equal(t, []string{
		"http://localhost:3000",
		"https://a.example.jp",
		"https://b.example.jp",
		"https://c.example.jp",
	}, got)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_0_PASSWORD", "secret")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")
	t.Setenv("POSTGRES_REPLICAS_1_PORT", "5433")
	// Incomplete entries end the list.
	t.Setenv("POSTGRES_REPLICAS_2_HOST", "replica-2")

	assert.Equal(t, []postgres.ConnectionConfig{
		{Host: "replica-0", Port: "5432", UserName: "reader", Password: "secret"},
		{Host: "replica-1", Port: "5433"},
	}, buildReplicasFromEnv())
}

func TestLoadWithEnv_PostgresSection(t *testing.T) {
	const pgYAML = `
database:
  driver: postgres
  postgres:
    sslMode: disable
    master:
      host: primary
      port: "5432"
      userName: hazard
      password: ""
`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(pgYAML), 0o600))
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.NotNil(t, cfg.Database.Postgres)
	assert.Empty(t, cfg.Database.Postgres.Replicas)
	assert.NoError(t, cfg.validate())
}

func TestValidate_FixedLookupContract(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "wider match radius",
			mutate:  func(c *Config) { c.Risk.MaxDistanceMeters = 1000 },
			wantErr: "risk.maxDistanceMeters",
		},
		{
			name:    "raised shelter cap",
			mutate:  func(c *Config) { c.Shelters.MaxLimit = 50 },
			wantErr: "shelters.maxLimit",
		},
		{
			name:    "default above cap",
			mutate:  func(c *Config) { c.Shelters.DefaultLimit = 21 },
			wantErr: "shelters.defaultLimit",
		},
		{
			name:    "postgres without connection",
			mutate:  func(c *Config) { c.Database.Driver = DriverPostgres },
			wantErr: "database.postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ZeroValuesTakeFixedDefaults(t *testing.T) {
	cfg := &Config{
		Risk:     &RiskConfig{},
		Shelters: &ShelterConfig{},
	}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.InDelta(t, 400.0, cfg.Risk.MaxDistanceMeters, 1e-9)
	assert.Equal(t, 20, cfg.Shelters.MaxLimit)
}
