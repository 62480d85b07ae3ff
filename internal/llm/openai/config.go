package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for an OpenAI-compatible chat/completions endpoint (Volcengine Ark by default).
type Config struct {
	APIKey  string        // if empty, falls back to env ARK_API_KEY
	BaseURL string        // default https://ark.cn-beijing.volces.com/api/v3
	Model   string        // e.g., "doubao-1.5-vision-pro-250328"
	Timeout time.Duration // per call
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ARK_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	}
	if cfg.Model == "" {
		cfg.Model = "doubao-1.5-vision-pro-250328"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Model returns the model identifier requests are sent with.
func (c *Client) Model() string {
	return c.cfg.Model
}
