package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/txtnovel/internal/parser"
	"github.com/dgallion1/txtnovel/internal/stats"
)

// Worker parses a single manuscript job.
type Worker struct {
	log     *slog.Logger
	stats   *stats.Latency
	options parser.Options
}

func NewWorker(log *slog.Logger, latency *stats.Latency, opts parser.Options) *Worker {
	return &Worker{
		log:     log,
		stats:   latency,
		options: opts,
	}
}

// Process runs the parse for a job and records the outcome on it.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(fmt.Sprintf("cancelled: %s", err))
		job.SetStatus(StatusFailed, "queued")
		return
	}

	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, w.options)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	data := job.FileData()
	start := time.Now()
	n, err := p.Parse(bytes.NewReader(data), job.Filename)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if w.stats != nil {
		w.stats.Record(elapsed, len(data))
	}

	charset := parser.SourceCharset(job.Filename, data)
	job.Complete(n, charset)
	log.Info("parsed manuscript",
		"charset", charset,
		"chapters", len(n.Chapters),
		"has_title", n.Title != nil,
		"has_author", n.Author != nil,
		"duration_ms", elapsed.Milliseconds(),
	)
}
