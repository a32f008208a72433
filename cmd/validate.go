// Copyright 2025 The x12d Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/x12d/x12d/common"
	"github.com/x12d/x12d/confengine"
	"github.com/x12d/x12d/engine"
)

var validateConfigPath string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a single X12 interchange file and print findings",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := confengine.LoadConfigPath(validateConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		eng, err := engine.New(cfg, common.GetBuildInfo())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create engine: %v\n", err)
			os.Exit(1)
		}
		defer eng.Stop()

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", args[0], err)
			os.Exit(1)
		}
		defer f.Close()

		report, err := eng.Validate(cmd.Context(), "cli", f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validate failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("bytes read: %d, segments parsed: %d, buffer resizes: %d\n",
			report.Stats.BytesRead, report.Stats.SegmentsParsed, report.Stats.BufferResizes)
		if report.ParseErr != "" {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", report.ParseErr)
		}
		for _, finding := range report.Findings {
			fmt.Println(finding.Error())
		}

		if report.ParseErr != "" || len(report.Findings) > 0 {
			os.Exit(1)
		}
	},
	Example: "# x12d validate claim.edi --config x12d.yaml",
}

func init() {
	validateCmd.Flags().StringVar(&validateConfigPath, "config", "x12d.yaml", "Configuration file path")
	rootCmd.AddCommand(validateCmd)
}
