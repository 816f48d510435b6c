package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/ceq/ceq"
	"github.com/gnolang/ceq/internal/env"
	"github.com/gnolang/ceq/internal/parser"
)

var (
	validStyle   = color.New(color.FgGreen, color.Bold)
	invalidStyle = color.New(color.FgRed, color.Bold)
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report which formulas already have usable conditional-equation shape",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file paths")
			os.Exit(1)
		}

		table, err := env.Load(configPath())
		if err != nil {
			logger.Fatal("Failed to load environment", zap.Error(err))
		}

		failed := false
		for _, path := range args {
			if !runCheck(logger, table, path) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

// runCheck classifies every form of one file; it returns false when any
// form is rejected.
func runCheck(logger *zap.Logger, environment ceq.Environment, path string) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error reading file", zap.String("path", path), zap.Error(err))
		return false
	}
	forms, err := parser.ParseAll(string(source))
	if err != nil {
		logger.Error("Error parsing file", zap.String("path", path), zap.Error(err))
		return false
	}

	ok := true
	for i, e := range forms {
		if ceq.IsCeq(environment, e) {
			fmt.Printf("%s %s form %d: %s\n", validStyle.Sprint("ceq"), path, i+1, e)
		} else {
			fmt.Printf("%s %s form %d: %s\n", invalidStyle.Sprint("not-ceq"), path, i+1, e)
			ok = false
		}
	}
	return ok
}
