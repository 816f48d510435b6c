package ceq

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnolang/ceq/internal/parser"
	"github.com/gnolang/ceq/internal/term"
)

// Extracted is one conditional equation derived from a source file,
// tagged with the file and the synthesized axiom name of the form it
// came from.
type Extracted struct {
	Path  string
	Axiom string
	Ceq   ConditionalEquation
}

// ExtractSource parses every top-level form of source and extracts
// conditional equations from each. Forms are treated as proved axioms:
// the i-th form gets a proof constant named A<i> (precondition
// discharge is the caller's concern, as with ToCeqs).
func ExtractSource(env Environment, path string, source []byte) ([]Extracted, error) {
	forms, err := parser.ParseAll(string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var out []Extracted
	for i, e := range forms {
		axiom := fmt.Sprintf("A%d", i+1)
		for _, c := range ToCeqs(env, e, term.Const(axiom)) {
			out = append(out, Extracted{Path: path, Axiom: axiom, Ceq: c})
		}
	}
	return out, nil
}

// ExtractFile reads and extracts a single file.
func ExtractFile(env Environment, path string) ([]Extracted, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return ExtractSource(env, path, source)
}

// ProcessFiles extracts conditional equations from every given path,
// concatenating results in path order.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	env Environment,
	paths []string,
	processor func(Environment, string) ([]Extracted, error),
) ([]Extracted, error) {
	var all []Extracted
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, env, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

// ProcessPath extracts from one file, or from every .ceq file under a
// directory. Directory entries are processed concurrently with a
// progress bar; within the returned slice, results stay grouped per
// file in lexical path order.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	env Environment,
	path string,
	processor func(Environment, string) ([]Extracted, error),
) ([]Extracted, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return processor(env, path)
	}

	var files []string
	filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err == nil && !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	sort.Strings(files)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	perFile := make([][]Extracted, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup

	for i, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			results, err := processor(env, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				errs[i] = err
				return
			}
			perFile[i] = results
			bar.Add(1)
		}(i, filePath)
	}
	wg.Wait()
	fmt.Println()

	var all []Extracted
	for i := range files {
		if errs[i] != nil {
			continue
		}
		all = append(all, perFile[i]...)
	}
	return all, nil
}

var desiredExtensions = map[string]bool{
	".ceq": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
