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
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/batch"
	"github.com/valpere/sahayak/internal/detector"
	"github.com/valpere/sahayak/internal/validation"
)

var (
	validateSource    string
	validateBatchFile string
	validateNoStore   bool
	validateJSON      bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <question-key> <answer...>",
	Short: "Validate an answer to an onboarding question",
	Long: `Validate a spoken or typed answer and print its canonical value.

Question keys: name, phone, age, gender (sex), skill (job_title),
experience, location (city), wage (wage_expected),
languages_known (languages).

Batch mode reads one JSON object per line from --batch ("-" for stdin):
  {"question_key":"age","text":"अट्ठाईस","source_language":"hi"}

Examples:
  sahayak validate age "मेरी उम्र २८ साल है"
  sahayak validate skill "I work as a plumber"
  sahayak validate --batch answers.jsonl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateBatchFile == "" && len(args) < 2 {
			return fmt.Errorf("expected <question-key> <answer>, or --batch")
		}

		ctx := context.Background()
		gw := buildGateway(cfg, logger)

		var engine *validation.Engine
		var err error
		if validateNoStore {
			engine, err = buildEngine(ctx, cfg, gw, nil, logger)
		} else {
			db, openErr := openStore()
			if openErr != nil {
				return openErr
			}
			defer db.Close()
			engine, err = buildEngine(ctx, cfg, gw, db, logger)
		}
		if err != nil {
			return err
		}

		if validateBatchFile != "" {
			return runBatch(ctx, engine)
		}

		text := strings.Join(args[1:], " ")
		src := validateSource
		if src == "auto" {
			src = ""
			if detected, ok := detector.New().DetectISO(text); ok {
				src = detected
				logger.Debug("detected source language", zap.String("lang", src))
			}
		}

		res := engine.ValidateAnswer(ctx, validation.RawAnswer{
			QuestionKey:    args[0],
			Text:           text,
			SourceLanguage: src,
		})

		if validateJSON {
			return printJSON(os.Stdout, res)
		}
		if res.Valid {
			fmt.Println(res.Value)
			return nil
		}
		fmt.Printf("invalid (%s): %s\n", res.Reason, res.ErrorMessage)
		return nil
	},
}

func runBatch(ctx context.Context, engine *validation.Engine) error {
	var in io.Reader = os.Stdin
	if validateBatchFile != "-" {
		f, err := os.Open(validateBatchFile)
		if err != nil {
			return fmt.Errorf("failed to open batch file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var answers []validation.RawAnswer
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var a validation.RawAnswer
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		answers = append(answers, a)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	runner := batch.New(engine, batch.Config{Workers: cfg.Batch.Workers, Timeout: cfg.Batch.Timeout})
	report := runner.Run(ctx, answers)

	fmt.Fprintf(os.Stderr, "Validated %d answers: %d valid, %d invalid (%s)\n",
		len(answers), report.Valid, report.Invalid, report.Duration.Round(time.Millisecond))
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	for _, res := range report.Results {
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateSource, "source", "s", "", `Source language hint (e.g. hi, en) or "auto" to detect`)
	validateCmd.Flags().StringVarP(&validateBatchFile, "batch", "b", "", `Validate JSON lines from a file ("-" for stdin)`)
	validateCmd.Flags().BoolVar(&validateNoStore, "no-store", false, "Skip loading user synonyms from the database")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the full result as JSON")
}
