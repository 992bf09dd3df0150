package mcpsrv

import (
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Stateless      bool
	EnableSearch   bool
	EnableAdmin    bool
	APIKey         string
	StdioAdmin     bool
	RPS            float64
	Burst          int
	SessionTimeout time.Duration
	Layout         string
	CatalogPath    string
	LogLevel       string
}

// LoadConfig reads server settings from SHOPTUI_MCP_* env vars. PORT is
// honored when SHOPTUI_MCP_PORT is unset.
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("SHOPTUI_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "SHOPTUI_MCP_PORT", "PORT")

	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", "")
	v.SetDefault("stateless", false)
	v.SetDefault("enable_search", false)
	v.SetDefault("enable_admin", false)
	v.SetDefault("api_key", "")
	v.SetDefault("stdio_admin", false)
	v.SetDefault("rps", 2.0)
	v.SetDefault("burst", 5)
	v.SetDefault("session_timeout", 15*time.Minute)
	v.SetDefault("layout", "narrow")
	v.SetDefault("catalog", "")
	v.SetDefault("log_level", "info")

	port := strings.TrimSpace(v.GetString("port"))
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Port:           port,
		AllowedOrigins: parseCSV(v.GetString("allowed_origins")),
		Stateless:      v.GetBool("stateless"),
		EnableSearch:   v.GetBool("enable_search"),
		EnableAdmin:    v.GetBool("enable_admin"),
		APIKey:         strings.TrimSpace(v.GetString("api_key")),
		StdioAdmin:     v.GetBool("stdio_admin"),
		RPS:            v.GetFloat64("rps"),
		Burst:          v.GetInt("burst"),
		SessionTimeout: v.GetDuration("session_timeout"),
		Layout:         strings.TrimSpace(v.GetString("layout")),
		CatalogPath:    strings.TrimSpace(v.GetString("catalog")),
		LogLevel:       v.GetString("log_level"),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = 15 * time.Minute
	}

	return cfg
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}

func parseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
