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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/batch"
	"github.com/valpere/sahayak/internal/onboarding"
	"github.com/valpere/sahayak/internal/server"
	"github.com/valpere/sahayak/internal/session"
	"github.com/valpere/sahayak/internal/tts"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the validation, translation and onboarding API.

Endpoints:
  GET    /health
  POST   /api/v1/validate
  POST   /api/v1/validate/batch
  POST   /api/v1/translate
  GET    /api/v1/questions
  GET    /api/v1/onboarding/:phone
  POST   /api/v1/onboarding/:phone/answers
  POST   /api/v1/onboarding/:phone/complete
  GET    /api/v1/workers
  GET    /api/v1/workers/export
  GET    /api/v1/workers/:phone
  DELETE /api/v1/workers/:phone`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		gw := buildGateway(cfg, logger)
		engine, err := buildEngine(ctx, cfg, gw, db, logger)
		if err != nil {
			return err
		}

		synth, err := tts.New(cfg.TTS, logger)
		if err != nil {
			return err
		}
		var opts []onboarding.Option
		if synth != nil {
			opts = append(opts, onboarding.WithSynthesizer(synth))
			logger.Info("error audio enabled", zap.String("synthesizer", synth.Name()))
		}

		sessions := session.NewMemoryStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
		svc := onboarding.New(engine, sessions, db, logger, opts...)

		srv := server.New(server.Deps{
			Validator:  engine,
			Batch:      batch.New(engine, batch.Config{Workers: cfg.Batch.Workers, Timeout: cfg.Batch.Timeout}),
			Translator: gw,
			Onboarding: svc,
			Workers:    db,
			Logger:     logger,
		})

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start(addr)
		}()

		// Wait for interrupt signal to gracefully shutdown the server
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			logger.Info("shutting down", zap.String("signal", sig.String()))
		}

		if err := srv.Shutdown(ctx, cfg.Server.ShutdownTimeout); err != nil {
			logger.Error("server forced to shutdown", zap.Error(err))
			return err
		}
		return <-errCh
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides server.addr)")
}
