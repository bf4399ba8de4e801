package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile writes a temporary config file.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

// chdir changes the working directory and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const sampleYAML = `
env: "prod"
http:
  host: "0.0.0.0"
  port: "8080"
upstream:
  base_url: "http://upstream.test"
  user_agent: "test-agent/2"
search:
  default_max: 25
filters:
  dir: "/srv/filters"
timeouts:
  service: "3s"
  upstream: "2s"
`

const minimalYAML = `
env: "stage"
`

const brokenYAML = `
env: [unclosed
`

func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := HTTPConfig{Host: "0.0.0.0", Port: "8080"}
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, "http://upstream.test", cfg.Upstream.BaseURL)
	require.Equal(t, "test-agent/2", cfg.Upstream.UserAgent)
	require.Equal(t, 25, cfg.Search.DefaultMax)
	require.Equal(t, "/srv/filters", cfg.Filters.Dir)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Service)
	require.Equal(t, 2*time.Second, cfg.Timeouts.Upstream)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.HTTP.Port)
	require.Equal(t, "https://data.rechtspraak.nl", cfg.Upstream.BaseURL)
	require.Equal(t, 50, cfg.Search.DefaultMax)
	require.Empty(t, cfg.Filters.Dir)
	require.Equal(t, 30*time.Second, cfg.Timeouts.Service)
	require.Zero(t, cfg.Timeouts.Upstream)
}

func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "relative base url",
			yaml: "upstream: { base_url: \"data.rechtspraak.nl\" }",
			want: "base_url",
		},
		{
			name: "negative page size",
			yaml: "search: { default_max: -1 }",
			want: "default_max",
		},
		{
			name: "negative timeout",
			yaml: "timeouts: { upstream: \"-1s\" }",
			want: "timeouts",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := writeFile(t, t.TempDir(), "c.yaml", tt.yaml)
			_, err := Load(p)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}

func TestLoad_WithLocalYAML_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "8080", cfg.HTTP.Port)
}

// CONFIG_PATH wins over local.yaml.
func TestLoad_Priority_ENVWinsOverLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, ".", "local.yaml", `
env: "local"
http: { host: "127.0.0.1", port: "7777" }
`)

	envPath := writeFile(t, dir, "from_env.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", envPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}

// An explicit path wins over CONFIG_PATH and local.yaml.
func TestLoad_Priority_ExplicitWinsOverEnvAndLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	explicit := writeFile(t, dir, "explicit.yaml", `
env: "prod"
http: { host: "0.0.0.0", port: "8080" }
`)
	badFromEnv := writeFile(t, dir, "bad.yaml", brokenYAML)
	t.Setenv("CONFIG_PATH", badFromEnv)
	writeFile(t, ".", "local.yaml", `
env: "local"
http: { host: "127.0.0.1", port: "9999" }
`)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "8080", cfg.HTTP.Port)
}

func TestLoad_EnvOverlay_OverridesValuesFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	t.Setenv("HTTP_PORT", "18080")
	t.Setenv("UPSTREAM_BASE_URL", "http://override.test")
	t.Setenv("SEARCH_DEFAULT_MAX", "10")
	t.Setenv("SERVICE", "5s")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "18080", cfg.HTTP.Port)
	require.Equal(t, "http://override.test", cfg.Upstream.BaseURL)
	require.Equal(t, 10, cfg.Search.DefaultMax)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Service)
}

func TestLoad_EnvOnly_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")

	t.Setenv("ENV", "dev")
	t.Setenv("HTTP_PORT", "50090")
	t.Setenv("FILTERS_DIR", "./filters")
	t.Setenv("UPSTREAM_TIMEOUT", "4s")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "50090", cfg.HTTP.Port)
	require.Equal(t, "./filters", cfg.Filters.Dir)
	require.Equal(t, 4*time.Second, cfg.Timeouts.Upstream)
}

func TestMustLoad_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "ok.yaml", minimalYAML)

	cfg := MustLoad(cfgPath)
	require.NotNil(t, cfg)
	require.Equal(t, "stage", cfg.Env)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
