package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/internal/core"
	"github.com/dhabedank/recipe-gpt/internal/server"
)

var (
	serveHost    string
	servePort    int
	servePersist bool
	serveOrigins []string
)

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve GET /recipe over HTTP",
	Long: `Run the recipe endpoint.

  GET /recipe?prompt=<description>

Answers 200 with the recipe JSON, or 400 with a plain-text error message.
Served recipes are not saved unless --persist is set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addPipelineFlags(ServeCmd)
	ServeCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Listen host")
	ServeCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "Listen port")
	ServeCmd.Flags().BoolVar(&servePersist, "persist", false, "Save served recipes to the recipe book")
	ServeCmd.Flags().StringSliceVar(&serveOrigins, "allow-origin", nil, "CORS allowed origins (default: any)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("persist") {
		cfg.Server.Persist = servePersist
	}
	if cmd.Flags().Changed("allow-origin") {
		cfg.Server.AllowOrigins = serveOrigins
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	adapter, err := createLLMAdapter(cfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM adapter: %w", err)
	}
	if adapter.Name() == "remote" {
		return fmt.Errorf("serve cannot use the remote adapter; pick a model provider")
	}

	var recipeStore core.RecipeStore
	if cfg.Server.Persist {
		s, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open recipe store: %w", err)
		}
		defer s.Close()
		recipeStore = s
	}

	log.WithField("gateway", adapter.Name()).
		WithField("persist", cfg.Server.Persist).
		WithField("port", strconv.Itoa(cfg.Server.Port)).
		Info("starting recipe server")

	gin.SetMode(gin.ReleaseMode)
	gen := core.NewGenerator(adapter, recipeStore, log)
	router := server.NewRouter(gen, log, server.Options{AllowOrigins: cfg.Server.AllowOrigins})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Address(), router, log).Run(ctx)
}
