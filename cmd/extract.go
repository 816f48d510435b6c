package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/ceq/ceq"
	"github.com/gnolang/ceq/formatter"
	"github.com/gnolang/ceq/internal/env"
)

var (
	extractJsonOutput bool
	outPath           string
)

var extractCmd = &cobra.Command{
	Use:   "extract [paths...]",
	Short: "Derive conditional equations from the propositions in the given files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		table, err := env.Load(configPath())
		if err != nil {
			logger.Fatal("Failed to load environment", zap.Error(err))
		}

		runExtract(ctx, logger, table, args, extractJsonOutput, outPath)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractJsonOutput, "json", false, "Output rules in JSON format")
	extractCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runExtract(ctx context.Context, logger *zap.Logger, environment ceq.Environment, paths []string, isJson bool, jsonOutput string) {
	results, err := ceq.ProcessFiles(ctx, logger, environment, paths, ceq.ExtractFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResults(logger, results, isJson, jsonOutput)
}

// extractedJSON is the wire shape of one rule in --json mode.
type extractedJSON struct {
	Path  string `json:"path"`
	Axiom string `json:"axiom"`
	Eq    string `json:"eq"`
	Proof string `json:"proof"`
}

func printResults(logger *zap.Logger, results []ceq.Extracted, isJson bool, jsonOutput string) {
	if !isJson {
		fmt.Print(formatter.GenerateFormattedRules(results))
		fmt.Printf("%d rule(s) derived\n", len(results))
		return
	}

	out := make([]extractedJSON, 0, len(results))
	for _, r := range results {
		out = append(out, extractedJSON{
			Path:  r.Path,
			Axiom: r.Axiom,
			Eq:    r.Ceq.Eq.String(),
			Proof: r.Ceq.Proof.String(),
		})
	}
	d, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Error("Error marshaling results", zap.Error(err))
		os.Exit(1)
	}

	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing output file", zap.String("path", jsonOutput), zap.Error(err))
		os.Exit(1)
	}
}
