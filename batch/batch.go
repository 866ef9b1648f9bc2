// Package batch converts many result pages in one run.
// It coordinates reading, cleaning, extraction, output storage, and
// archiving of HTML snapshots.
package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/serpjson"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// ReadFunc loads the HTML of one snapshot.
type ReadFunc func(path string) (string, error)

// Runner orchestrates the conversion of HTML snapshots to records.
type Runner struct {
	Read      ReadFunc
	Extractor serpjson.Extractor

	// Cleaner, when set, is applied to each page before extraction.
	Cleaner serpjson.Cleaner

	// Outputs, when set, receives every encoded record. It is committed
	// only when all files convert and aborted otherwise.
	Outputs serpjson.OutputStore

	// Snapshots, when set, archives every record after Outputs commits.
	Snapshots serpjson.SnapshotService

	Concurrency int
	Indent      bool
}

// Result holds the outcome of a batch run.
type Result struct {
	Converted int
	Failed    int
	Archived  int
	Bytes     int

	// Outputs are the converted records in input order.
	Outputs []*serpjson.Output
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of processing a single file.
type fileResult struct {
	position int
	path     string
	html     string
	output   *serpjson.Output
	err      error
}

// Run converts every file in paths. Files are processed concurrently but
// saved in input order. A file that fails does not stop the others; the
// run then returns an EINVALID error alongside the partial Result.
func (r *Runner) Run(ctx context.Context, paths []string, progress ProgressFunc) (*Result, error) {
	if len(paths) == 0 {
		return nil, serpjson.Errorf(serpjson.EINVALID, "no input files")
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Workers report concurrently; progress sees one event at a time.
	var mu sync.Mutex
	notify := func(e ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		progress(e)
	}

	total := len(paths)
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	results := make([]fileResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			res := r.processFile(gctx, i, path)
			results[i] = res

			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Add(1)),
				Total:     total,
				Path:      path,
			}
			if res.err != nil {
				event.Type = ProgressFailed
				event.Error = res.err
			}
			notify(event)
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{}
	for _, res := range results {
		if res.err != nil {
			result.Failed++
			continue
		}
		if r.Outputs != nil {
			if err := r.Outputs.Save(ctx, res.output); err != nil {
				notify(ProgressEvent{Type: ProgressFailed, Completed: total, Total: total, Path: res.path, Error: err})
				result.Failed++
				continue
			}
		}
		result.Converted++
		result.Bytes += len(res.output.JSON)
		result.Outputs = append(result.Outputs, res.output)
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if result.Failed > 0 {
		if r.Outputs != nil {
			if err := r.Outputs.Abort(); err != nil {
				return result, fmt.Errorf("abort outputs: %w", err)
			}
		}
		return result, serpjson.Errorf(serpjson.EINVALID, "%d of %d files failed", result.Failed, total)
	}

	if r.Outputs != nil {
		if err := r.Outputs.Commit(); err != nil {
			return result, fmt.Errorf("commit outputs: %w", err)
		}
	}

	if r.Snapshots != nil {
		for _, res := range results {
			snap := &serpjson.Snapshot{
				SourcePath: res.path,
				Record:     res.output.Record,
			}
			if err := r.Snapshots.CreateSnapshot(ctx, snap, res.html); err != nil {
				return result, fmt.Errorf("archive %s: %w", res.path, err)
			}
			result.Archived++
		}
	}

	return result, nil
}

// processFile reads, cleans, extracts, and encodes a single file.
func (r *Runner) processFile(ctx context.Context, position int, path string) fileResult {
	result := fileResult{
		position: position,
		path:     path,
	}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	html, err := r.Read(path)
	if err != nil {
		result.err = err
		return result
	}
	result.html = html

	if r.Cleaner != nil {
		html, err = r.Cleaner.Clean(html)
		if err != nil {
			result.err = err
			return result
		}
	}

	rec, err := r.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	b, err := serpjson.MarshalRecord(rec, r.Indent)
	if err != nil {
		result.err = fmt.Errorf("encode %s: %w", path, err)
		return result
	}

	result.output = &serpjson.Output{
		SourcePath: path,
		Record:     rec,
		JSON:       b,
	}
	return result
}
