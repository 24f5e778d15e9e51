package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the four services read at startup.
// Each binary only looks at the sections it needs.
type Config struct {
	HTTP struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"http"`
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
	Store struct {
		Type      string `mapstructure:"type"` // firestore | memory
		Firestore struct {
			ProjectID string `mapstructure:"project_id"`
		} `mapstructure:"firestore"`
	} `mapstructure:"store"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
	Services struct {
		UserURL string `mapstructure:"user_url"`
		ChatURL string `mapstructure:"chat_url"`
	} `mapstructure:"services"`
	Requests struct {
		UnselectLock struct {
			Enabled bool `mapstructure:"enabled"`
		} `mapstructure:"unselect_lock"`
	} `mapstructure:"requests"`
	Offers struct {
		RequirePayoutAccount bool `mapstructure:"require_payout_account"`
		StrictTransitions    bool `mapstructure:"strict_transitions"`
		RequireCounterparty  bool `mapstructure:"require_counterparty"`
	} `mapstructure:"offers"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

// Load reads .env (if any), config.yaml (if any) and the environment, in
// that order of increasing precedence. defaultPort is the service's own port.
func Load(defaultPort string) (Config, error) {
	// a missing .env is normal outside local dev
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("http.port", defaultPort)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("store.type", "memory")
	v.SetDefault("services.user_url", "http://localhost:8080")
	v.SetDefault("services.chat_url", "http://localhost:8081")
	v.SetDefault("requests.unselect_lock.enabled", false)
	v.SetDefault("offers.require_payout_account", true)
	v.SetDefault("offers.strict_transitions", false)
	v.SetDefault("offers.require_counterparty", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// explicit bindings so Unmarshal sees keys that only exist in the env
	_ = v.BindEnv("http.port", "PORT")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")
	_ = v.BindEnv("store.type", "STORE_TYPE")
	_ = v.BindEnv("store.firestore.project_id", "FIRESTORE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT")
	_ = v.BindEnv("database.url", "DATABASE_URL", "DB_CONNECTION_STRING")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("services.user_url", "USER_SERVICE_URL")
	_ = v.BindEnv("services.chat_url", "CHAT_SERVICE_URL")
	_ = v.BindEnv("requests.unselect_lock.enabled", "REQUESTS_UNSELECT_LOCK_ENABLED")
	_ = v.BindEnv("offers.require_payout_account", "OFFERS_REQUIRE_PAYOUT_ACCOUNT")
	_ = v.BindEnv("offers.strict_transitions", "OFFERS_STRICT_TRANSITIONS")
	_ = v.BindEnv("offers.require_counterparty", "OFFERS_REQUIRE_COUNTERPARTY")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}

	// CORS_ALLOWED_ORIGINS comes in as one comma separated string
	cfg.CORS.AllowedOrigins = splitAndTrim(strings.Join(cfg.CORS.AllowedOrigins, ","))

	return cfg, nil
}

// Validate checks the settings a given store type needs.
func (c Config) Validate() error {
	switch c.Store.Type {
	case "memory":
	case "firestore":
		if c.Store.Firestore.ProjectID == "" {
			return fmt.Errorf("store.firestore.project_id is required for the firestore store")
		}
	default:
		return fmt.Errorf("unknown store type %q", c.Store.Type)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	return nil
}

func splitAndTrim(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
