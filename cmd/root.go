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
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/translation-service/internal/config"
)

var version = "0.1.0"

// v collects configuration from the environment and the flags bound below.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "translation-service",
	Short: "HTTP translation service",
	Long: `An HTTP service that translates text through an external provider.

Endpoints:
  POST /translate  {"text": "...", "target_lang": "es"}
  GET  /health

Supported providers: googlefree (default), gtranslate, google, mymemory

Running the binary without a subcommand starts the server.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.String("provider", "googlefree", "Translation provider: googlefree, gtranslate, google, mymemory")
	flags.String("default-target", "es", "Target language when a request names none")
	flags.StringP("credentials", "c", "", "Path to Google Cloud credentials (google provider)")
	flags.StringP("project", "p", "", "Google Cloud project ID (google provider)")
	flags.String("mymemory-email", "", "MyMemory email (for higher limits)")
	flags.Duration("provider-timeout", 0, "Bound on a single provider call (0 = none)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "json", "Log format: json or console")

	for key, flag := range map[string]string{
		"TRANSLATION_PROVIDER":           "provider",
		"DEFAULT_TARGET_LANG":            "default-target",
		"GOOGLE_APPLICATION_CREDENTIALS": "credentials",
		"GOOGLE_PROJECT_ID":              "project",
		"MYMEMORY_EMAIL":                 "mymemory-email",
		"PROVIDER_TIMEOUT":               "provider-timeout",
		"LOG_LEVEL":                      "log-level",
		"LOG_FORMAT":                     "log-format",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}
