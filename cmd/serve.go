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
	"time"

	"github.com/spf13/cobra"

	"github.com/x12d/x12d/common"
	"github.com/x12d/x12d/confengine"
	"github.com/x12d/x12d/engine"
	"github.com/x12d/x12d/internal/sigs"
	"github.com/x12d/x12d/logger"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the validation HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := confengine.LoadConfigPath(serveConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		eng, err := engine.New(cfg, common.GetBuildInfo())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create engine: %v\n", err)
			os.Exit(1)
		}
		if err := eng.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start engine: %v\n", err)
			os.Exit(1)
		}

		var reloadTotal int
		for {
			select {
			case <-sigs.Terminate():
				eng.Stop()
				return

			case <-sigs.Reload():
				reloadTotal++

				cfg, err := confengine.LoadConfigPath(serveConfigPath)
				if err != nil {
					logger.Errorf("failed to load config (count=%d): %v", reloadTotal, err)
					continue
				}

				start := time.Now()
				if err := eng.Reload(cfg); err != nil {
					logger.Errorf("failed to reload config: %v", err)
					continue
				}
				logger.Infof("reload (count=%d) took %s", reloadTotal, time.Since(start))
			}
		}
	},
	Example: "# x12d serve --config x12d.yaml",
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "x12d.yaml", "Configuration file path")
	rootCmd.AddCommand(serveCmd)
}
