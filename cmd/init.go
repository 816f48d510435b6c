package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/ceq/internal/env"
)

// initCmd: ceq init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new environment configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = env.DefaultConfigPath
		}
		if err := env.WriteDefault(path); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}
