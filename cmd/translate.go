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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/sahayak/internal/detector"
)

var (
	inputFile  string
	sourceLang string
	targetLang string
	showJSON   bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate short text through the translation gateway",
	Long: `Translate text with the configured primary service, falling back to the
Google web endpoint when the primary fails or returns corrupted output.

The gateway never fails: when every service is unavailable the input is
printed unchanged.

Examples:
  sahayak translate "मैं प्लंबर हूं"
  sahayak translate --source en --target hi "I am a plumber"
  sahayak translate --input answer.txt --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("no text to translate")
		}

		// Auto-detect source language when not specified
		src := sourceLang
		if src == "auto" {
			src = ""
			if detected, ok := detector.New().DetectISO(text); ok {
				src = detected
				fmt.Fprintf(os.Stderr, "Detected source language: %s\n", src)
			}
		}

		gw := buildGateway(cfg, logger)
		out := gw.Resolve(context.Background(), text, src, targetLang)

		if showJSON {
			return printJSON(os.Stdout, out)
		}
		fmt.Println(out.Text)
		if out.Suspicious {
			fmt.Fprintf(os.Stderr, "Primary output rejected as suspicious (used: %s)\n", out.SourceUsed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read text from file")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "", `Source language (empty infers hi/en from script, "auto" uses detection)`)
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "en", "Target language")
	translateCmd.Flags().BoolVar(&showJSON, "json", false, "Print the outcome as JSON")
}
