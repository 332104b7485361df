package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"golang.org/x/text/language"
)

// clearEnv resets every key Load reads so the host environment cannot leak
// into a test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ENV_FILE", "APP_ENV", "SERVICE_NAME", "SERVICE_VERSION", "HTTP_ADDR", "HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "SWAGGER_ENABLED",
		"DATA_SOURCE", "MEMORY_SEED_FILE", "DB_URL", "DB_DISABLE_PREPARED_BINARY_RESULT",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "REST_BASE_URL", "REST_API_KEY", "REST_TIMEOUT",
		"REST_MAX_RETRIES", "REST_RETRY_BACKOFF", "REST_CIRCUIT_ENABLED", "REST_CIRCUIT_FAILURE_COUNT",
		"REST_CIRCUIT_OPEN_TIMEOUT", "REST_CIRCUIT_HALF_OPEN_MAX_REQ", "AUTH_MODE", "AUTH_JWT_SECRET",
		"AUTH_JWT_LEEWAY", "AUTH_CACHE_TTL", "AUTH_CACHE_MAX_ENTRIES", "SORT_LOCALE", "STATS_WORKER_COUNT",
		"UPTRACE_ENABLED", "UPTRACE_DSN", "UPTRACE_LOGS_ENABLED", "OTEL_EXPORTER_OTLP_HEADERS",
		"PYROSCOPE_ENABLED", "PYROSCOPE_SERVER_ADDRESS", "PYROSCOPE_APP_NAME", "PYROSCOPE_UPLOAD_RATE",
		"PPROF_ENABLED", "PPROF_ADDR",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev || cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected app env/addr: %q %q", cfg.AppEnv, cfg.HTTPAddr)
	}
	if cfg.DataSource != DataSourceMemory {
		t.Fatalf("expected memory data source, got %q", cfg.DataSource)
	}
	if cfg.AuthMode != AuthModeJWT || cfg.AuthJWTSecret == "" {
		t.Fatalf("expected jwt auth with a dev secret, got mode=%q", cfg.AuthMode)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("expected swagger enabled in dev")
	}
	if cfg.SortLocale != language.English {
		t.Fatalf("expected english collation, got %v", cfg.SortLocale)
	}
	if cfg.StatsWorkerCount != 4 {
		t.Fatalf("expected 4 stats workers, got %d", cfg.StatsWorkerCount)
	}
	if cfg.LogFormat != logging.FormatJSON || cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log settings: %q %v", cfg.LogFormat, cfg.LogLevel)
	}
	if !cfg.RESTCircuit.Enabled || cfg.RESTCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.RESTCircuit)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "invalid")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ProdRequiresJWTSecretAndHidesDocs(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", EnvProd)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when AUTH_JWT_SECRET is missing in prod")
	}

	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled by default in prod")
	}
}

func TestLoad_DataSourceValidation(t *testing.T) {
	clearEnv(t)

	t.Setenv("DATA_SOURCE", "mongo")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown DATA_SOURCE")
	}

	t.Setenv("DATA_SOURCE", DataSourceREST)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when rest data source has no credentials")
	}
}

func TestLoad_RESTDataSourceDefaultsToRemoteAuth(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_SOURCE", "REST")
	t.Setenv("REST_BASE_URL", "https://project.supabase.co")
	t.Setenv("REST_API_KEY", "anon-key")
	t.Setenv("REST_TIMEOUT", "2s")
	t.Setenv("REST_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("REST_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != DataSourceREST || cfg.AuthMode != AuthModeRemote {
		t.Fatalf("unexpected data source/auth: %q %q", cfg.DataSource, cfg.AuthMode)
	}
	if cfg.RESTTimeout != 2*time.Second {
		t.Fatalf("unexpected REST timeout: %s", cfg.RESTTimeout)
	}
	if cfg.RESTCircuit.FailureThreshold != 3 || cfg.RESTCircuit.OpenTimeout != 30*time.Second {
		t.Fatalf("unexpected circuit config: %+v", cfg.RESTCircuit)
	}
}

func TestLoad_RemoteAuthRequiresCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_MODE", AuthModeRemote)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for remote auth without REST credentials")
	}
}

func TestLoad_SortLocaleAndWorkers(t *testing.T) {
	clearEnv(t)
	t.Setenv("SORT_LOCALE", "sv")
	t.Setenv("STATS_WORKER_COUNT", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SortLocale != language.Swedish {
		t.Fatalf("expected swedish collation, got %v", cfg.SortLocale)
	}
	if cfg.StatsWorkerCount != 8 {
		t.Fatalf("expected 8 workers, got %d", cfg.StatsWorkerCount)
	}

	t.Setenv("STATS_WORKER_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero workers")
	}

	t.Setenv("STATS_WORKER_COUNT", "")
	t.Setenv("SORT_LOCALE", "not a locale!")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid SORT_LOCALE")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_READ_TIMEOUT", "-1s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative HTTP_READ_TIMEOUT")
	}
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SERVICE_VERSION=from-dotenv\nHTTP_ADDR=:9999\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("HTTP_ADDR", ":7000")
	// Unset so the file can provide it; t.Setenv above restores it afterwards.
	if err := os.Unsetenv("SERVICE_VERSION"); err != nil {
		t.Fatalf("unset SERVICE_VERSION: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceVersion != "from-dotenv" {
		t.Fatalf("expected version from .env, got %q", cfg.ServiceVersion)
	}
	if cfg.HTTPAddr != ":7000" {
		t.Fatalf("expected environment to win over .env, got %q", cfg.HTTPAddr)
	}
}
