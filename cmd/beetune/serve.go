package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/config"
	"github.com/jonathan/beetune/internal/llm"
	"github.com/jonathan/beetune/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Starts an HTTP server exposing the analysis, formatting, and compilation endpoints. Set BEETUNE_API_SECRET to require token authentication.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	store, err := config.NewStore("")
	if err != nil {
		return err
	}

	// The server runs without a client when no provider is configured;
	// analysis endpoints then answer 400 while formatting and compilation
	// keep working.
	var client llm.Client
	if c, err := newLLMClient(cmd.Context(), "", ""); err == nil {
		client = c
	} else {
		fmt.Fprintf(os.Stderr, "Warning: starting without an AI provider: %v\n", err)
	}

	cfg := server.Config{
		Port:      servePort,
		APISecret: os.Getenv("BEETUNE_API_SECRET"),
	}

	srv, err := server.New(cfg, store, client)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
