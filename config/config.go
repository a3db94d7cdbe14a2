package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API           APIConfig
	App           AppConfig
	Chat          ChatConfig
	Search        SearchConfig
	Logging       LoggingConfig
	Ops           OpsConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type APIConfig struct {
	BaseURL               string
	RequestTimeoutSeconds int
	RateLimitRPS          float64
	RateLimitBurst        int
}

type AppConfig struct {
	Env                   string
	StateDir              string
	VerifyRedirectSeconds int
}

type ChatConfig struct {
	PollIntervalSeconds int
	MaxMessageLength    int
	ScrollTolerancePx   int
}

type SearchConfig struct {
	DebounceMillis int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type OpsConfig struct {
	Enabled bool
	Addr    string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("API_REQUEST_TIMEOUT_SECONDS", 30)
	v.SetDefault("API_RATE_LIMIT_RPS", 10.0)
	v.SetDefault("API_RATE_LIMIT_BURST", 20)
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_STATE_DIR", "")
	v.SetDefault("VERIFY_REDIRECT_SECONDS", 4)
	v.SetDefault("CHAT_POLL_INTERVAL_SECONDS", 5)
	v.SetDefault("CHAT_MAX_MESSAGE_LENGTH", 1000)
	v.SetDefault("CHAT_SCROLL_TOLERANCE_PX", 50)
	v.SetDefault("SEARCH_DEBOUNCE_MILLIS", 500)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("OPS_SERVER_ENABLED", false)
	v.SetDefault("OPS_SERVER_ADDR", "127.0.0.1:9091")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "mentorhub-client")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "mentorhub")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_SERVICE_INSTANCE_ID", "")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_ENDPOINT", "")
	v.SetDefault("O11Y_PROFILING_APP_NAME", "mentorhub-client")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	v.AutomaticEnv()

	cfg := &Config{
		API: APIConfig{
			BaseURL:               v.GetString("API_BASE_URL"),
			RequestTimeoutSeconds: v.GetInt("API_REQUEST_TIMEOUT_SECONDS"),
			RateLimitRPS:          v.GetFloat64("API_RATE_LIMIT_RPS"),
			RateLimitBurst:        v.GetInt("API_RATE_LIMIT_BURST"),
		},
		App: AppConfig{
			Env:                   v.GetString("APP_ENV"),
			StateDir:              v.GetString("APP_STATE_DIR"),
			VerifyRedirectSeconds: v.GetInt("VERIFY_REDIRECT_SECONDS"),
		},
		Chat: ChatConfig{
			PollIntervalSeconds: v.GetInt("CHAT_POLL_INTERVAL_SECONDS"),
			MaxMessageLength:    v.GetInt("CHAT_MAX_MESSAGE_LENGTH"),
			ScrollTolerancePx:   v.GetInt("CHAT_SCROLL_TOLERANCE_PX"),
		},
		Search: SearchConfig{
			DebounceMillis: v.GetInt("SEARCH_DEBOUNCE_MILLIS"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Ops: OpsConfig{
			Enabled: v.GetBool("OPS_SERVER_ENABLED"),
			Addr:    v.GetString("OPS_SERVER_ADDR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("O11Y_SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants that would otherwise surface as
// runtime failures deep inside the controllers.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.Chat.PollIntervalSeconds <= 0 {
		return fmt.Errorf("CHAT_POLL_INTERVAL_SECONDS must be positive")
	}
	if c.Search.DebounceMillis <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_MILLIS must be positive")
	}
	if c.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("CHAT_MAX_MESSAGE_LENGTH must be positive")
	}
	return nil
}

// IsDevelopment returns true when running in the development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
