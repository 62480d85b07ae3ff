package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/llm/openai"
)

func main() {
	cfg := common.LoadConfig()
	logger := common.NewLogger(os.Stderr, cfg.Log)

	if cfg.LLM.APIKey == "" {
		logger.Error("ARK_API_KEY env var is required")
		os.Exit(2)
	}

	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	reply, err := client.Ping(context.Background())
	if err != nil {
		logger.Error("ping failed", "model", client.Model(), "error", err)
		os.Exit(1)
	}
	fmt.Println(reply)
}
