// Package main provides the beetune CLI: resume formatting, LaTeX
// compilation, and AI-assisted job and resume analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/config"
)

var (
	rootConfigPath string
	rootVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "beetune",
	Short: "Resume formatting and analysis toolkit",
	Long:  "beetune converts plain-text resumes into styled LaTeX documents, compiles them to PDF, and analyzes resumes against job postings with an AI provider.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed progress information")
}

// loadFileConfig reads the --config file when given. A missing flag returns
// an empty config so flag values stand alone.
func loadFileConfig() (config.Config, error) {
	if rootConfigPath == "" {
		return config.Config{}, nil
	}

	cfg, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func verboseEnabled(fileCfg config.Config) bool {
	return rootVerbose || fileCfg.Verbose
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
