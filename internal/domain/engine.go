package domain

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	m "cobble.dev/pkg/cobble/internal/model"
	"cobble.dev/pkg/cobble/pkg"
)

// Engine drives the classifier across the lines of a document and
// caches per-line results. Classification carries no cross-line state,
// so recomputing one line never requires touching its neighbors: the
// cost of an edit is proportional to the edited line, not the document.
type Engine struct {
	classifier *Classifier
	cache      pkg.LineCache[[]m.Span]
}

// NewEngine constructs an Engine over the given classifier.
func NewEngine(classifier *Classifier) *Engine {
	return &Engine{
		classifier: classifier,
		cache:      pkg.NewLineCache[[]m.Span](),
	}
}

// Recompute classifies text for the given line, replaces the cached
// entry, and returns the spans.
func (e *Engine) Recompute(line int, text string) []m.Span {
	spans := e.classifier.Classify(text)
	e.cache.Put(line, spans)

	return spans
}

// Invalidate marks a single line uncomputed.
func (e *Engine) Invalidate(line int) {
	e.cache.Drop(line)
}

// SpansFor returns the cached spans for a line, or nil if the line was
// never computed.
func (e *Engine) SpansFor(line int) []m.Span {
	spans, ok := e.cache.Get(line)
	if !ok {
		return nil
	}

	return spans
}

// InsertLine classifies a newly inserted line, shifting cached entries
// for the lines below it so they stay aligned without recomputation.
func (e *Engine) InsertLine(line int, text string) []m.Span {
	spans := e.classifier.Classify(text)
	e.cache.Insert(line, spans)

	return spans
}

// RemoveLine discards the cache entry for a deleted line, shifting the
// entries below it up.
func (e *Engine) RemoveLine(line int) {
	e.cache.Remove(line)
}

// Truncate discards cache entries for lines removed from the document.
func (e *Engine) Truncate(lineCount int) {
	e.cache.Truncate(lineCount)
}

// RecomputeAll reclassifies every line of a document. Lines are
// independent, so they are classified in parallel.
func (e *Engine) RecomputeAll(ctx context.Context, lines []string) error {
	e.cache.Truncate(len(lines))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for i, text := range lines {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			e.Recompute(i, text)

			return nil
		})
	}

	return group.Wait()
}
