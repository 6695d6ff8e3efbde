// Package pipeline orchestrates discovery, extraction, enrichment, graph
// construction, and ranking into one analysis run.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/funcrank/internal/discover"
	"github.com/phobologic/funcrank/internal/extract"
	"github.com/phobologic/funcrank/internal/graph"
	"github.com/phobologic/funcrank/internal/lang"
	"github.com/phobologic/funcrank/internal/metrics"
	"github.com/phobologic/funcrank/internal/model"
	"github.com/phobologic/funcrank/internal/rank"
	"github.com/phobologic/funcrank/internal/report"
)

// Options controls a pipeline run.
type Options struct {
	// Vocabulary overrides the default domain keyword set when non-empty.
	Vocabulary []string

	// Exclude lists glob patterns for repo-relative paths to skip.
	Exclude []string

	// Workers bounds the extraction and enrichment pools. 0 means GOMAXPROCS.
	Workers int

	// MaxFileSize skips source files larger than this many bytes when > 0.
	MaxFileSize int

	// Stderr receives progress messages and per-file warnings. Nil discards.
	Stderr io.Writer
}

// Run analyzes the tree at root and returns the assembled document. Every
// failure below the run level degrades locally: unreadable files are
// skipped, malformed files contribute no records, unparseable slices get
// zero metrics. A tree with no functions yields a valid empty document.
func Run(root string, opts Options) (*report.Document, error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	l := lang.Python()
	query, err := l.GetTagQuery()
	if err != nil {
		return nil, fmt.Errorf("compiling %s query: %w", l.Name, err)
	}

	files, err := discover.Files(root, discover.Options{
		Exclude:     opts.Exclude,
		MaxFileSize: opts.MaxFileSize,
		Stderr:      stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}

	_, _ = fmt.Fprintf(stderr, "Extracting functions from %s\n", root)
	records := extractConcurrent(root, files, l, query, workerCount(opts.Workers, len(files)), stderr)

	_, _ = fmt.Fprintf(stderr, "Analyzing %d functions...\n", len(records))
	vocabulary := opts.Vocabulary
	if len(vocabulary) == 0 {
		vocabulary = metrics.DefaultVocabulary()
	}
	if err := enrichConcurrent(records, l, vocabulary, workerCount(opts.Workers, len(records))); err != nil {
		return nil, err
	}

	g := graph.Build(records)
	ranked := rank.Rank(records, g)

	return report.Build(records, ranked), nil
}

func workerCount(configured, work int) int {
	n := configured
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > work {
		n = work
	}
	if n < 1 {
		n = 1
	}
	return n
}

// extractConcurrent parses files across a worker pool, each goroutine with
// its own parser, and flattens the per-file records back into discovery
// order so downstream output is deterministic.
func extractConcurrent(root string, files []discover.FileEntry, l *lang.Language, query *sitter.Query, numWorkers int, stderr io.Writer) []*model.FunctionRecord {
	if len(files) == 0 {
		return nil
	}

	work := make(chan int, len(files))
	perFile := make([][]*model.FunctionRecord, len(files))

	var wg sync.WaitGroup
	var stderrMu sync.Mutex

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			parser := l.NewParser()
			for idx := range work {
				f := files[idx]
				source, err := os.ReadFile(filepath.Join(root, f.Path))
				if err != nil {
					stderrMu.Lock()
					_, _ = fmt.Fprintf(stderr, "Warning: failed to read %s: %v\n", f.Path, err)
					stderrMu.Unlock()
					continue
				}
				perFile[idx] = extract.Functions(parser, query, source, f.Path)
			}
		}()
	}

	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()

	var records []*model.FunctionRecord
	for _, recs := range perFile {
		records = append(records, recs...)
	}
	return records
}

// enrichConcurrent attaches metrics across a worker pool. Each goroutine
// owns an Enricher (parsers are not thread-safe) and each record is visited
// exactly once, so no synchronization is needed beyond the pool itself.
func enrichConcurrent(records []*model.FunctionRecord, l *lang.Language, vocabulary []string, numWorkers int) error {
	if len(records) == 0 {
		return nil
	}

	enrichers := make([]*metrics.Enricher, numWorkers)
	for i := range enrichers {
		e, err := metrics.NewEnricher(l, vocabulary)
		if err != nil {
			return fmt.Errorf("creating enricher: %w", err)
		}
		enrichers[i] = e
	}

	work := make(chan int, len(records))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				enrichers[w].Enrich(records[idx])
			}
		}()
	}

	for i := range records {
		work <- i
	}
	close(work)
	wg.Wait()

	return nil
}
