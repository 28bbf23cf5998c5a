package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// CORSAllowedOrigins applies to the JSON endpoints under /api
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Site       SiteConfig
	Navigation NavigationConfig
	Theme      ThemeConfig
	Assist     AssistConfig
	Contact    ContactConfig
	Newsletter NewsletterConfig
	Tracing    TracingConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	RequestTimeout  time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"45s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SiteConfig holds page metadata
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"ADmyBrand"`
	Title       string `env:"SITE_TITLE" envDefault:"ADmyBrand | AI-Powered Marketing Suite"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"Modern AI marketing suite that automates campaigns, surfaces insights and scales with your brand."`
	OGImage     string `env:"SITE_OG_IMAGE" envDefault:"/static/images/og-image.svg"`

	// ContentPath overrides the embedded content document when set
	ContentPath string `env:"SITE_CONTENT_PATH" envDefault:""`
}

// NavigationConfig holds the scroll-tracking parameters shared by the
// server-rendered header and the client script.
type NavigationConfig struct {
	// ReferenceLine is the distance from the viewport top a section must straddle to be active
	ReferenceLine float64 `env:"NAV_REFERENCE_LINE" envDefault:"100"`
	// HideThreshold is the scroll offset below which the bar never hides
	HideThreshold float64 `env:"NAV_HIDE_THRESHOLD" envDefault:"150"`
	// ScrolledThreshold is the offset after which the bar switches to its compact style
	ScrolledThreshold float64 `env:"NAV_SCROLLED_THRESHOLD" envDefault:"20"`
	// ThrottleInterval bounds how often scroll handlers run
	ThrottleInterval time.Duration `env:"NAV_THROTTLE_INTERVAL" envDefault:"100ms"`
}

// ThemeConfig holds the persisted theme preference cookie settings
type ThemeConfig struct {
	CookieName string        `env:"THEME_COOKIE_NAME" envDefault:"theme"`
	MaxAge     time.Duration `env:"THEME_COOKIE_MAX_AGE" envDefault:"8760h"`
}

// AssistConfig holds the FAQ "ask a question" provider configuration
type AssistConfig struct {
	// Provider: "gemini", "openai" or empty to pick from the configured keys
	Provider string `env:"ASSIST_PROVIDER" envDefault:""`

	// Gemini (Google AI) settings
	GoogleAPIKey string `env:"GOOGLE_API_KEY" envDefault:""`
	GeminiModel  string `env:"ASSIST_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// OpenAI-compatible settings
	OpenAIAPIKey  string `env:"OPENAI_API_KEY" envDefault:""`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:""`
	OpenAIModel   string `env:"ASSIST_OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	Temperature float64       `env:"ASSIST_TEMPERATURE" envDefault:"0.2"`
	Timeout     time.Duration `env:"ASSIST_TIMEOUT" envDefault:"30s"`

	// Per-client limits for the outbound call
	RequestsPerMinute int `env:"ASSIST_REQUESTS_PER_MINUTE" envDefault:"6"`
	Burst             int `env:"ASSIST_BURST" envDefault:"3"`

	// Disable network calls (for testing)
	NetworkDisabled bool `env:"ASSIST_NETWORK_DISABLED" envDefault:"false"`
}

// ResolvedProvider returns the provider to use, or "" when none is configured
func (a *AssistConfig) ResolvedProvider() string {
	if a.NetworkDisabled {
		return ""
	}
	switch a.Provider {
	case "gemini":
		if a.GoogleAPIKey != "" {
			return "gemini"
		}
		return ""
	case "openai":
		if a.OpenAIAPIKey != "" {
			return "openai"
		}
		return ""
	}
	if a.GoogleAPIKey != "" {
		return "gemini"
	}
	if a.OpenAIAPIKey != "" {
		return "openai"
	}
	return ""
}

// IsEnabled returns true if an assist provider is configured
func (a *AssistConfig) IsEnabled() bool {
	return a.ResolvedProvider() != ""
}

// ContactConfig holds contact form delivery settings
type ContactConfig struct {
	// SimulatedDelay is how long the stand-in submitter takes to "deliver"
	SimulatedDelay time.Duration `env:"CONTACT_SIMULATED_DELAY" envDefault:"2s"`
	// DisplayDuration is how long the submitted state is kept before resetting
	DisplayDuration time.Duration `env:"CONTACT_DISPLAY_DURATION" envDefault:"4s"`

	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	FromEmail     string `env:"CONTACT_FROM_ADDRESS" envDefault:"noreply@admybrand.example"`
	FromName      string `env:"CONTACT_FROM_NAME" envDefault:"ADmyBrand Website"`
	ToEmail       string `env:"CONTACT_TO_ADDRESS" envDefault:"hello@admybrand.example"`

	RequestsPerMinute int `env:"CONTACT_REQUESTS_PER_MINUTE" envDefault:"10"`
	Burst             int `env:"CONTACT_BURST" envDefault:"3"`
}

// IsMailgunConfigured returns true if real delivery through Mailgun is possible
func (c *ContactConfig) IsMailgunConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != "" && c.ToEmail != ""
}

// NewsletterConfig holds the in-memory sign-up list settings
type NewsletterConfig struct {
	// MaxSubscribers caps the list; sign-ups beyond it are refused
	MaxSubscribers int `env:"NEWSLETTER_MAX_SUBSCRIBERS" envDefault:"10000"`

	RequestsPerMinute int `env:"NEWSLETTER_REQUESTS_PER_MINUTE" envDefault:"5"`
	Burst             int `env:"NEWSLETTER_BURST" envDefault:"3"`
}

// TracingConfig holds OpenTelemetry export settings
type TracingConfig struct {
	// OTLPEndpoint enables tracing when set; spans go to it over OTLP/HTTP
	OTLPEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"admybrand-website"`
	SampleRatio  float64 `env:"OTEL_TRACES_SAMPLER_ARG" envDefault:"1"`
	Insecure     bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
}

// Enabled reports whether spans are exported
func (t *TracingConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Bool("assist", cfg.Assist.IsEnabled()),
		slog.String("assist_provider", cfg.Assist.ResolvedProvider()),
		slog.Bool("mailgun", cfg.Contact.IsMailgunConfigured()),
		slog.Bool("tracing", cfg.Tracing.Enabled()),
	)

	return cfg, nil
}
