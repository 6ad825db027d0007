package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/internal/config"
	"github.com/dhabedank/recipe-gpt/internal/llm"
	"github.com/dhabedank/recipe-gpt/internal/logging"
	"github.com/dhabedank/recipe-gpt/internal/store"
)

// Flags shared by the commands that run the recipe pipeline.
var (
	configFile  string // Config file path
	llmProvider string
	llmModel    string
	remoteURL   string
	storeKind   string
	storePath   string
	logLevel    string
	logFile     string
)

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (default: .recipe-gpt.yaml)")
	cmd.Flags().StringVarP(&llmProvider, "llm", "l", "auto", "LLM provider (auto/openai-api/anthropic-api/claude-cli/codex-cli/remote)")
	cmd.Flags().StringVarP(&llmModel, "model", "m", "", "Model to use (provider-specific)")
	cmd.Flags().StringVar(&remoteURL, "remote-url", "", "Recipe server base URL for --llm remote")
	cmd.Flags().StringVar(&storeKind, "store", "json", "Recipe store (json/sqlite)")
	cmd.Flags().StringVar(&storePath, "store-path", "recipes.json", "Recipe store file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug/info/warn/error)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file")
}

// loadConfig reads the config file and layers explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := config.Search(configFile)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded config from: %s\n", path)
	}

	// Apply flag values only if they were explicitly set
	if cmd.Flags().Changed("llm") {
		cfg.LLM = llmProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = llmModel
	}
	if cmd.Flags().Changed("remote-url") {
		cfg.RemoteURL = remoteURL
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = storeKind
	}
	if cmd.Flags().Changed("store-path") {
		cfg.StorePath = storePath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createLLMAdapter(cfg *config.Config) (llm.Adapter, error) {
	return llm.NewAdapter(cfg.LLM, llm.Config{
		Model:       cfg.Model,
		RemoteURL:   cfg.RemoteURL,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
}

func openStore(cfg *config.Config) (store.Adapter, error) {
	return store.New(store.Config{Kind: cfg.Store, Path: cfg.StorePath})
}

func newLogger(cfg *config.Config, quiet bool) (*logrus.Logger, func() error, error) {
	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Quiet:  quiet,
	})
}
