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
	"strings"

	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/config"
	"github.com/valpere/sahayak/internal/detector"
	"github.com/valpere/sahayak/internal/normalize"
	"github.com/valpere/sahayak/internal/store"
	"github.com/valpere/sahayak/internal/translator"
	"github.com/valpere/sahayak/internal/validation"
	"github.com/valpere/sahayak/internal/vocab"
)

// buildPrimary constructs the configured primary translation service, or
// nil for "none".
func buildPrimary(tc config.TranslationConfig) translator.TranslationService {
	switch strings.ToLower(tc.Primary) {
	case "google":
		return translator.NewGoogleService(tc.Google)
	case "mymemory":
		return translator.NewMyMemoryService(tc.MyMemory)
	default:
		return nil
	}
}

// buildGateway wires the primary service, the gtx fallback and the
// optional language gate.
func buildGateway(c *config.Config, log *zap.Logger) *translator.Gateway {
	tc := c.Translation

	var fallback translator.TranslationService
	if tc.FallbackEnabled {
		fallback = translator.NewGtxService(tc.Fallback)
	}

	opts := []translator.GatewayOption{translator.WithTimeout(tc.Timeout)}
	if tc.LanguageGate {
		opts = append(opts, translator.WithLanguageGate(detector.New()))
	}

	primary := buildPrimary(tc)
	if primary == nil && fallback == nil {
		log.Warn("no translation service configured, answers are matched untranslated")
	}
	return translator.NewGateway(primary, fallback, log, opts...)
}

// buildEngine assembles the validation engine. Synonyms stored in db, when
// db is non-nil, extend the built-in vocabularies.
func buildEngine(ctx context.Context, c *config.Config, gw *translator.Gateway, db *store.Store, log *zap.Logger) (*validation.Engine, error) {
	set := vocab.Default()
	if db != nil {
		extra, err := db.LoadSynonyms(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load synonyms: %w", err)
		}
		set = set.Extend(extra)
		log.Debug("synonyms loaded", zap.Int("domains", len(extra)))
	}

	var tr normalize.Translator
	if gw != nil {
		tr = gw
	}
	n := normalize.New(set, tr, c.Cutoffs, log)

	engine, err := validation.New(c.Validation, n, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build validation engine: %w", err)
	}
	return engine, nil
}

func openStore() (*store.Store, error) {
	db, err := store.New(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
