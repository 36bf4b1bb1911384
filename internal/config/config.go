package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Storage   StorageConfig   `yaml:"storage"`
	Redis     RedisConfig     `yaml:"redis"`
	Events    EventsConfig    `yaml:"events"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings for the browser dashboard.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id,Retry-After"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"incentive-ledger"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request budgets, in requests per minute.
type RateLimitConfig struct {
	Login           int           `yaml:"login"            env:"RATE_LIMIT_LOGIN"            env-default:"10"`
	Verify          int           `yaml:"verify"           env:"RATE_LIMIT_VERIFY"           env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// AnalyzerConfig holds receipt analyzer settings.
type AnalyzerConfig struct {
	APIKey           string        `yaml:"api_key"           env:"ANALYZER_API_KEY"`
	BaseURL          string        `yaml:"base_url"          env:"ANALYZER_BASE_URL"`
	Model            string        `yaml:"model"             env:"ANALYZER_MODEL"             env-default:"claude-sonnet-4-5"`
	MaxTokens        int64         `yaml:"max_tokens"        env:"ANALYZER_MAX_TOKENS"        env-default:"1024"`
	Timeout          time.Duration `yaml:"timeout"           env:"ANALYZER_TIMEOUT"           env-default:"45s"`
	MaxImagePx       int           `yaml:"max_image_px"      env:"ANALYZER_MAX_IMAGE_PX"      env-default:"1600"`
	BreakerThreshold int           `yaml:"breaker_threshold" env:"ANALYZER_BREAKER_THRESHOLD" env-default:"5"`
	BreakerCooldown  time.Duration `yaml:"breaker_cooldown"  env:"ANALYZER_BREAKER_COOLDOWN"  env-default:"1m"`
}

// Enabled reports whether an analyzer API key is configured.
func (c AnalyzerConfig) Enabled() bool { return c.APIKey != "" }

// Storage backends.
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// StorageConfig holds proof blob storage settings.
type StorageConfig struct {
	Backend         string `yaml:"backend"          env:"STORAGE_BACKEND"          env-default:"local"`
	LocalDir        string `yaml:"local_dir"        env:"STORAGE_LOCAL_DIR"        env-default:"./uploads"`
	GCSBucket       string `yaml:"gcs_bucket"       env:"STORAGE_GCS_BUCKET"`
	CredentialsFile string `yaml:"credentials_file" env:"STORAGE_CREDENTIALS_FILE"`
}

// RedisConfig holds the submission lock settings. An empty Addr disables
// locking.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	LockTTL  time.Duration `yaml:"lock_ttl"  env:"REDIS_LOCK_TTL"  env-default:"2m"`
	LockWait time.Duration `yaml:"lock_wait" env:"REDIS_LOCK_WAIT" env-default:"3s"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// EventsConfig holds settlement event publishing settings. Publishing is
// disabled unless both ProjectID and Topic are set.
type EventsConfig struct {
	ProjectID string `yaml:"project_id" env:"EVENTS_PROJECT_ID"`
	Topic     string `yaml:"topic"      env:"EVENTS_TOPIC"`
}

// Enabled reports whether Pub/Sub publishing is configured.
func (c EventsConfig) Enabled() bool { return c.ProjectID != "" && c.Topic != "" }

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
