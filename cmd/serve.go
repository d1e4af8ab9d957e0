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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/translation-service/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server on HOST:PORT (default 0.0.0.0:8000).

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, svc, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("Starting translation service",
		zap.String("version", version),
		zap.String("provider", svc.ProviderName()),
		zap.String("default_target_lang", cfg.Translate.DefaultTargetLang),
	)

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, svc, log)
	if err := srv.Run(ctx); err != nil {
		log.Error("Server failed", zap.Error(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := rootCmd.PersistentFlags()
	flags.Int("port", 8000, "Port to listen on")
	flags.String("host", "0.0.0.0", "Address to bind")
	flags.Duration("shutdown-timeout", 0, "Grace period for in-flight requests on shutdown (default 10s)")

	_ = v.BindPFlag("PORT", flags.Lookup("port"))
	_ = v.BindPFlag("HOST", flags.Lookup("host"))
	_ = v.BindPFlag("SHUTDOWN_TIMEOUT", flags.Lookup("shutdown-timeout"))
}
