// funcrank ranks the functions of a Python source tree by structural
// importance and flags trivial boilerplate.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phobologic/funcrank/internal/config"
	"github.com/phobologic/funcrank/internal/pipeline"
)

var version = "dev"

const defaultOutput = "functions_ranked.json"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	output      string
	configPath  string
	exclude     []string
	workers     int
	maxFileSize int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "funcrank [flags] repo",
		Short: "Static analysis ranking the functions of a Python repository",
		Long: `funcrank walks a Python source tree, extracts every function definition,
enriches each with complexity, maintainability, call, and domain-relevance
metrics, builds a call graph, and writes a JSON document ranking the
functions by a composite importance score with an independent triviality
flag per function.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], flags, cmd.Flags().Changed, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultOutput, `output JSON path ("-" for stdout)`)
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file path")
	cmd.Flags().StringArrayVar(&flags.exclude, "exclude", nil, "glob pattern to exclude (repeatable)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&flags.maxFileSize, "max-file-size", 0, "skip files larger than this many bytes")

	return cmd
}

func run(root string, flags cliFlags, changed func(string) bool, stdout, stderr io.Writer) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if changed("workers") {
		cfg.Workers = flags.workers
	}
	if changed("max-file-size") {
		cfg.MaxFileSize = flags.maxFileSize
	}
	cfg.Exclude = append(cfg.Exclude, flags.exclude...)

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	doc, err := pipeline.Run(root, pipeline.Options{
		Vocabulary:  cfg.Vocabulary,
		Exclude:     cfg.Exclude,
		Workers:     cfg.Workers,
		MaxFileSize: cfg.MaxFileSize,
		Stderr:      stderr,
	})
	if err != nil {
		return err
	}

	if flags.output == "-" {
		return doc.Encode(stdout)
	}

	_, _ = fmt.Fprintf(stderr, "Writing analysis to %s\n", flags.output)
	f, err := os.Create(flags.output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := doc.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	return f.Close()
}
