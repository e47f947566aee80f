package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
// The env tag names the variable each field is read from and is used in validation errors.
type Config struct {
	Port        int    `env:"PORT" validate:"gte=0,lte=65535"`
	APIKey      string `env:"API_KEY"` // API key for authentication
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR"`
	ServiceName string `env:"SERVICE_NAME"`
	Version     string `env:"VERSION"`
	Environment string `env:"ENVIRONMENT"`

	DBUser            string        `env:"DB_USER"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBHost            string        `env:"DB_HOST"`
	DBPort            string        `env:"DB_PORT"`
	DBName            string        `env:"DB_NAME"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" validate:"gte=1"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME"`
	RunMigrations     bool          `env:"RUN_MIGRATIONS"`

	TrustedProxies []string `env:"TRUSTED_PROXIES" validate:"dive,cidr|ip"`

	// Reward distribution
	BaseXP                 int64         `env:"BASE_XP" validate:"gt=0"`
	DefaultPolicyPath      string        `env:"DEFAULT_POLICY_PATH"`
	PolicyCacheSize        int           `env:"POLICY_CACHE_SIZE" validate:"gte=1"`
	PolicyCacheTTL         time.Duration `env:"POLICY_CACHE_TTL" validate:"gt=0"`
	AutoDistributeInterval time.Duration `env:"AUTO_DISTRIBUTE_INTERVAL" validate:"gte=0"` // 0 disables the sweeper
	AutoDistributeGrace    time.Duration `env:"AUTO_DISTRIBUTE_GRACE" validate:"gte=0"`
	AutoDistributeBatch    int           `env:"AUTO_DISTRIBUTE_BATCH" validate:"gte=1"`
	WorkerCount            int           `env:"WORKER_COUNT" validate:"gte=1"`

	// Skill progression bounds
	SkillMin      float64 `env:"SKILL_MIN"`
	SkillMax      float64 `env:"SKILL_MAX" validate:"gtfield=SkillMin"`
	SkillBaseline float64 `env:"SKILL_BASELINE" validate:"gtefield=SkillMin,ltefield=SkillMax"`

	// Events and announcements
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL" validate:"omitempty,url"`
	DeadLetterPath    string `env:"DEAD_LETTER_PATH"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})
	return v
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", "tournament-rewards"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "tournament_rewards"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		RunMigrations:     getEnvAsBool("RUN_MIGRATIONS", true),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		BaseXP:                 int64(getEnvAsInt("BASE_XP", DefaultBaseXP)),
		DefaultPolicyPath:      getEnv("DEFAULT_POLICY_PATH", ConfigPathDefaultRewardPolicy),
		PolicyCacheSize:        getEnvAsInt("POLICY_CACHE_SIZE", DefaultPolicyCacheSize),
		PolicyCacheTTL:         getEnvAsDuration("POLICY_CACHE_TTL", DefaultPolicyCacheTTL),
		AutoDistributeInterval: getEnvAsDuration("AUTO_DISTRIBUTE_INTERVAL", 0),
		AutoDistributeGrace:    getEnvAsDuration("AUTO_DISTRIBUTE_GRACE", DefaultAutoDistributeGrace),
		AutoDistributeBatch:    getEnvAsInt("AUTO_DISTRIBUTE_BATCH", DefaultAutoDistributeBatch),
		WorkerCount:            getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),

		SkillMin:      getEnvAsFloat("SKILL_MIN", 0),
		SkillMax:      getEnvAsFloat("SKILL_MAX", DefaultSkillMax),
		SkillBaseline: getEnvAsFloat("SKILL_BASELINE", 0),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
		DeadLetterPath:    getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges; errors name the offending environment variable
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			names := make([]string, 0, len(errs))
			for _, fe := range errs {
				names = append(names, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(names, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses Go duration strings such as "10m" or "1h30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
