// Package config loads all process configuration from the environment.
// A .env file is honored in development (loaded by main via godotenv);
// every value has a default except credentials.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates the per-subsystem configuration.
type Config struct {
	Environment string // "development" or "production"
	ListenAddr  string

	VoiceAgent VoiceAgentConfig
	Anthropic  AnthropicConfig
	Whapi      WhapiConfig
	Gmail      GmailConfig
	Redis      RedisConfig
	Scheduler  SchedulerConfig
	CVStoreDir string
}

// Production reports whether the process runs with production semantics
// (e.g. webhook signature validation is mandatory).
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// VoiceAgentConfig holds the outbound-calling provider settings.
type VoiceAgentConfig struct {
	BaseURL       string
	APIKey        string
	AgentID       string
	PhoneNumberID string
	WebhookSecret string
	Timeout       time.Duration
}

// Configured reports whether outbound calling credentials are present.
func (c VoiceAgentConfig) Configured() bool {
	return c.APIKey != "" && c.AgentID != "" && c.PhoneNumberID != ""
}

// AnthropicConfig holds the LLM settings. Model scores transcripts;
// FastModel extracts contact details from CV text.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	FastModel string
	MaxTokens int
}

// WhapiConfig holds the WhatsApp gateway settings.
type WhapiConfig struct {
	BaseURL      string
	Token        string
	WebhookToken string
	Timeout      time.Duration
}

// GmailConfig holds the Gmail API settings. Token acquisition happens out
// of band; the refresh token is provided ready to use.
type GmailConfig struct {
	ClientID       string
	ClientSecret   string
	RefreshToken   string
	Sender         string
	InboxLabel     string
	ProcessedLabel string
}

// Configured reports whether the Gmail credentials are present.
func (c GmailConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// RedisConfig holds the cache settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SchedulerConfig holds job cadences and pipeline thresholds.
type SchedulerConfig struct {
	Timezone string // IANA name; calling-hour windows are evaluated here

	DispatchInterval  time.Duration
	ReconcileInterval time.Duration
	FollowupInterval  time.Duration
	CloseInterval     time.Duration
	MailboxInterval   time.Duration

	StuckCallThreshold time.Duration
	OrphanThreshold    time.Duration
}

// Load reads the full configuration from the environment.
func Load() (*Config, error) {
	maxTokens, err := intEnv("ANTHROPIC_MAX_TOKENS", 2048)
	if err != nil {
		return nil, err
	}
	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		ListenAddr:  getEnvOrDefault("LISTEN_ADDR", ":8080"),
		VoiceAgent: VoiceAgentConfig{
			BaseURL:       getEnvOrDefault("VOICE_AGENT_BASE_URL", "https://api.elevenlabs.io"),
			APIKey:        os.Getenv("VOICE_AGENT_API_KEY"),
			AgentID:       os.Getenv("VOICE_AGENT_AGENT_ID"),
			PhoneNumberID: os.Getenv("VOICE_AGENT_PHONE_NUMBER_ID"),
			WebhookSecret: os.Getenv("VOICE_AGENT_WEBHOOK_SECRET"),
			Timeout:       durationEnvOrDefault("VOICE_AGENT_TIMEOUT", 30*time.Second),
		},
		Anthropic: AnthropicConfig{
			APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			Model:     getEnvOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
			FastModel: getEnvOrDefault("ANTHROPIC_FAST_MODEL", "claude-haiku-4-5"),
			MaxTokens: maxTokens,
		},
		Whapi: WhapiConfig{
			BaseURL:      getEnvOrDefault("WHAPI_BASE_URL", "https://gate.whapi.cloud"),
			Token:        os.Getenv("WHAPI_TOKEN"),
			WebhookToken: os.Getenv("WHAPI_WEBHOOK_TOKEN"),
			Timeout:      durationEnvOrDefault("WHAPI_TIMEOUT", 20*time.Second),
		},
		Gmail: GmailConfig{
			ClientID:       os.Getenv("GMAIL_CLIENT_ID"),
			ClientSecret:   os.Getenv("GMAIL_CLIENT_SECRET"),
			RefreshToken:   os.Getenv("GMAIL_REFRESH_TOKEN"),
			Sender:         os.Getenv("GMAIL_SENDER"),
			InboxLabel:     getEnvOrDefault("GMAIL_INBOX_LABEL", "INBOX"),
			ProcessedLabel: getEnvOrDefault("GMAIL_PROCESSED_LABEL", "recruitflow-processed"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Scheduler: SchedulerConfig{
			Timezone:           getEnvOrDefault("SCHEDULER_TIMEZONE", "UTC"),
			DispatchInterval:   durationEnvOrDefault("DISPATCH_INTERVAL", 5*time.Minute),
			ReconcileInterval:  durationEnvOrDefault("RECONCILE_INTERVAL", 10*time.Minute),
			FollowupInterval:   durationEnvOrDefault("FOLLOWUP_INTERVAL", time.Hour),
			CloseInterval:      durationEnvOrDefault("CLOSE_STALE_INTERVAL", 24*time.Hour),
			MailboxInterval:    durationEnvOrDefault("MAILBOX_POLL_INTERVAL", 15*time.Minute),
			StuckCallThreshold: durationEnvOrDefault("STUCK_CALL_THRESHOLD", 15*time.Minute),
			OrphanThreshold:    durationEnvOrDefault("BATCH_ORPHAN_THRESHOLD", time.Hour),
		},
		CVStoreDir: getEnvOrDefault("CV_STORE_DIR", "data/cvs"),
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnvOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
