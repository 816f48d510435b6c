package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "ceq",
	Short:            "ceq - derive conditional rewrite rules from proved propositions",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'ceq' is entered
			_ = cmd.Help()
			return
		}
		// Format: ceq [path1 path2 ...] => behaves like the extract subcommand
		extractCmd.Run(extractCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return rootCmd.Execute()
}

// configPath resolves the environment config: the -c flag wins, then a
// .ceq.yaml in the working directory, then the built-in default.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if _, err := os.Stat(".ceq.yaml"); err == nil {
		return ".ceq.yaml"
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "environment config file (default .ceq.yaml when present)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "processing timeout")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(checkCmd)
}
