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

	"github.com/spf13/cobra"

	"github.com/valpere/translation-service/internal/config"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List target languages the configured provider accepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		provider, err := buildService(cmd.Context(), cfg.Translate)
		if err != nil {
			return err
		}

		langs, err := provider.SupportedLanguages(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list languages for %s: %w", provider.Name(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", provider.Name(), strings.Join(langs, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
