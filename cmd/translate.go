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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/translation-service/internal/translation"
)

var (
	inputFile  string
	outputFile string
	targetLang string
	asJSON     bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text once without starting the server",
	Long: `Translate text through the configured provider and print the result.

The text is taken from the arguments, or from --input when given.
The source language is always detected automatically.

  translation-service translate -t fr "Hello"
  translation-service translate -i notes.txt -o notes.de.txt -t de`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if inputFile != "" {
			if inputFile == outputFile {
				return fmt.Errorf("input file and output file cannot be the same")
			}
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(data)
		}

		_, log, svc, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		out := svc.Translate(context.Background(), translation.Request{Text: text, TargetLang: targetLang})
		switch out.Kind {
		case translation.InvalidRequest:
			return out.Err
		case translation.ProviderFailed:
			return fmt.Errorf("translation failed: %w", out.Err)
		}

		result := out.Response.TranslatedText
		if asJSON {
			data, err := json.MarshalIndent(out.Response, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			result = string(data)
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(result), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Successfully translated to %s\n", out.Response.TargetLanguage)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (stdout when empty)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (default from --default-target)")
	translateCmd.Flags().BoolVar(&asJSON, "json", false, "Print the same JSON the HTTP endpoint returns")
}
