// Package batch runs the clause-validity analysis over many inputs: a
// directory of DIMACS files, or a suite of formulas with assignments
// loaded from a YAML file.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taulab/gophercnf/dimacs"
)

// A Result is the analysis outcome for one DIMACS file. A file that could
// not be read or parsed carries its error in Err; it never aborts the
// rest of the run.
type Result struct {
	Path    string
	Stats   dimacs.Stats
	Elapsed time.Duration
	Err     error
}

// Run analyzes every .cnf file under dir. Each file is independent of the
// others, so they are fanned out over a pool of workers; workers <= 0
// means one worker per file. Results are sorted by path. Run itself only
// fails when the directory cannot be listed.
func Run(dir string, workers int) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list %q: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".cnf") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if workers <= 0 || workers > len(paths) {
		workers = len(paths)
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				start := time.Now()
				stats, err := dimacs.CheckFile(paths[i])
				results[i] = Result{
					Path:    paths[i],
					Stats:   stats,
					Elapsed: time.Since(start),
					Err:     err,
				}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}
