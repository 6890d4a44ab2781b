/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/config"
	"github.com/valpere/sahayak/internal/logging"
)

var version = "0.1.0"

var (
	cfgFile  string
	dbPath   string
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sahayak",
	Short: "Validate and normalize spoken onboarding answers",
	Long: `A CLI and HTTP service that validates worker onboarding answers given
by voice in Hindi or English, normalizes them to canonical values and
stores completed worker profiles.

Configuration is read from sahayak.yaml (or --config), a .env file and
SAHAYAK_* environment variables.

Use "sahayak validate --help" to check a single answer.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Store.Path = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./sahayak.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
