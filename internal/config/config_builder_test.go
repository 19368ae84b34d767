package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/shop"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source does not pass validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroValueWins verifies the precedence of merged layers.
func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "from-env"}},
		&StructuredConfig{App: App{TokenSignKey: "from-flags", TokenIssuer: "flags-issuer"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "flags-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
}

// TestBuild_ExplicitFalseMigrateIsKept verifies that a disabled migration
// flag is not overwritten by the default.
func TestBuild_ExplicitFalseMigrateIsKept(t *testing.T) {
	disabled := false
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{Migrate: &disabled}}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.False(t, cfg.Storage.DB.MigrationsEnabled())
	assert.False(t, disabled, "source config must not be modified")
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "env-secret"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.TokenSignKey)
}

func TestWithFlags_SetsErrorOnInvalidFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-token-duration", "never"})
	assert.ErrorIs(t, b.err, ErrInvalidFlagValue)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"app": {"token_issuer": "json-issuer"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithDotEnv_LoadsFileWithoutOverridingEnv(t *testing.T) {
	path := writeTempFile(t, ".env", "APP_TOKEN_SIGN_KEY=dotenv-secret\nAPP_TOKEN_ISSUER=dotenv-issuer\n")
	setEnvVars(t, map[string]string{
		"DOTENV":           path,
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-secret", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	setEnvVars(t, map[string]string{"DOTENV": filepath.Join(t.TempDir(), "missing.env")})

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AppliesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DOTENV":                  filepath.Join(t.TempDir(), "missing.env"),
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/shop",
	})

	cfg, err := getStructuredConfig([]string{"-token-sign-key", "secret"})
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 72*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, ":3001", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.True(t, cfg.Storage.DB.MigrationsEnabled())
}

func TestGetStructuredConfig_FailsWithoutTokenSignKey(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DOTENV":                  filepath.Join(t.TempDir(), "missing.env"),
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/shop",
	})

	cfg, err := getStructuredConfig(nil)
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "TokenSignKey")
}

func TestGetStructuredConfig_MigrationsCanBeDisabled(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "env",
			env:  map[string]string{"STORAGE_DB_MIGRATE": "false"},
			args: []string{"-token-sign-key", "secret"},
		},
		{
			name: "flag",
			args: []string{"-token-sign-key", "secret", "-migrate=false"},
		},
		{
			name: "env false wins over flag true",
			env:  map[string]string{"STORAGE_DB_MIGRATE": "false"},
			args: []string{"-token-sign-key", "secret", "-migrate=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{
				"DOTENV":                  filepath.Join(t.TempDir(), "missing.env"),
				"STORAGE_DB_DATABASE_URI": "postgres://localhost/shop",
			}
			for k, v := range tt.env {
				env[k] = v
			}
			setEnvVars(t, env)

			cfg, err := getStructuredConfig(tt.args)
			require.NoError(t, err)
			assert.False(t, cfg.Storage.DB.MigrationsEnabled())
		})
	}
}

func TestGetStructuredConfig_MigrationsFromJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"storage":{"db":{"migrate":false}}}`)
	setEnvVars(t, map[string]string{
		"DOTENV":                  filepath.Join(t.TempDir(), "missing.env"),
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/shop",
		"CONFIG":                  path,
	})

	cfg, err := getStructuredConfig([]string{"-token-sign-key", "secret"})
	require.NoError(t, err)
	assert.False(t, cfg.Storage.DB.MigrationsEnabled())
}
