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
	"fmt"

	"go.uber.org/zap"

	"github.com/valpere/translation-service/internal/config"
	"github.com/valpere/translation-service/internal/detector"
	"github.com/valpere/translation-service/internal/logger"
	"github.com/valpere/translation-service/internal/translation"
	"github.com/valpere/translation-service/internal/translator"
)

// buildService constructs the provider named by cfg and checks it is ready.
func buildService(ctx context.Context, cfg config.TranslateConfig) (translator.TranslationService, error) {
	var svc translator.TranslationService
	switch cfg.Provider {
	case "googlefree":
		svc = translator.NewGoogleFreeService()
	case "gtranslate":
		svc = translator.NewGTranslateService()
	case "google":
		svc = translator.NewGoogleService(cfg.Credentials, cfg.ProjectID)
	case "mymemory":
		svc = translator.NewMyMemoryService(cfg.MyMemoryEmail, detector.Shared())
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}

	if err := svc.IsAvailable(ctx); err != nil {
		return nil, fmt.Errorf("translation provider %s is not available: %w", svc.Name(), err)
	}
	return svc, nil
}

func serviceConfig(cfg config.TranslateConfig) translator.ServiceConfig {
	return translator.ServiceConfig{
		Credentials:  cfg.Credentials,
		ProjectID:    cfg.ProjectID,
		MyMemoryMail: cfg.MyMemoryEmail,
		Timeout:      cfg.Timeout,
	}
}

// bootstrap loads configuration and wires the logger and translation
// service shared by every subcommand.
func bootstrap() (*config.Config, *zap.Logger, *translation.Service, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	provider, err := buildService(context.Background(), cfg.Translate)
	if err != nil {
		return nil, nil, nil, err
	}

	svc := translation.NewService(provider, serviceConfig(cfg.Translate), cfg.Translate.DefaultTargetLang, log)
	return cfg, log, svc, nil
}
