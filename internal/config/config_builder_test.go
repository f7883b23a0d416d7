package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminEmail:        "admin@cabinet.fr",
			AdminPasswordHash: "$2a$10$hash",
			TokenSignKey:      "0123456789abcdef",
			TokenIssuer:       "vitrine",
			TokenDuration:     time.Hour,
			Version:           "1.0.0",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  1 << 20,
		},
		Storage: Storage{
			DB:    DB{DSN: "data/contacts.db"},
			Files: Files{DataDir: "data", PublicDir: "public"},
		},
		Adapter:    Adapter{RequestTimeout: 10 * time.Second},
		Workers:    Workers{WatchInterval: 5 * time.Second},
		Log:        Log{Level: "info"},
		BackendURL: "http://localhost:5001",
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero config is rejected by validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs replace earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "2.0.0"}, Server: Server{HTTPAddress: ":9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "admin@cabinet.fr", cfg.App.AdminEmail)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
	}{
		{name: "missing admin email", mutate: func(cfg *StructuredConfig) { cfg.App.AdminEmail = "" }},
		{name: "malformed admin email", mutate: func(cfg *StructuredConfig) { cfg.App.AdminEmail = "admin" }},
		{name: "short sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "short" }},
		{name: "unknown log level", mutate: func(cfg *StructuredConfig) { cfg.Log.Level = "loud" }},
		{name: "mail region without sender", mutate: func(cfg *StructuredConfig) { cfg.Adapter.MailRegion = "eu-west-3" }},
		{name: "backend url not an url", mutate: func(cfg *StructuredConfig) { cfg.BackendURL = "videos" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			b := newConfigBuilder()
			b.configs = append(b.configs, c)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_VERSION") })

	b := newConfigBuilder().withDotEnv(p).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.Version)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "from-env"})
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-dotenv\n"), 0o600))

	b := newConfigBuilder().withDotEnv(p).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_MAX_UPLOAD_SIZE": "huge"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-a", "localhost:7000"}))
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:7000", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nowhere"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_InsertsBeforeFlags verifies that the JSON config lands before
// the last (flags) config so explicit flags still win after merging.
func TestWithJSON_InsertsBeforeFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Server.HTTPAddress = "localhost:1111"
	path := writeTempJSONConfig(t, payload)

	env := validConfig()
	flags := &StructuredConfig{JSONFilePath: path, Server: Server{HTTPAddress: "localhost:2222"}}

	b := newConfigBuilder()
	b.configs = append(b.configs, env, flags)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Same(t, flags, b.configs[2])

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetAdminConfig ────────────────────────────────────────────────────────────

func TestLoadAdminConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadAdminConfig(filepath.Join(t.TempDir(), ".env"), nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerAddress)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadAdminConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"ADMIN_SERVER_ADDRESS": "http://env:8080"})

	cfg, err := loadAdminConfig("", []string{"-s", "http://flag:8080", "-t", "3s"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:8080", cfg.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadAdminConfig_InvalidAddress(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadAdminConfig("", []string{"-s", "not a url"})
	assert.ErrorIs(t, err, ErrInvalidAdminConfig)
	assert.NotNil(t, cfg)
}
