package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/collector"
	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
)

const defaultBatchSize = 500

type Pipeline interface {
	Run(ctx context.Context) (Stats, error)
}

// BulkSaver is the write side of a preview index.
type BulkSaver interface {
	SaveBulk(ctx context.Context, articles []domain.Article) error
}

type Stats struct {
	Saved   int
	Failed  int
	Batches int
}

type PipelineConfig struct {
	Name      string
	BatchSize int
}

// SyncPipeline copies articles from a collector into a bulk saver.
type SyncPipeline struct {
	collector collector.Collector[domain.Article]
	saver     BulkSaver
	config    *PipelineConfig
}

type PipelineOption func(pipeline *SyncPipeline)

func WithBatchSize(size int) PipelineOption {
	return func(pipeline *SyncPipeline) {
		if size > 0 {
			pipeline.config.BatchSize = size
		}
	}
}

func WithName(name string) PipelineOption {
	return func(pipeline *SyncPipeline) {
		pipeline.config.Name = name
	}
}

func NewSyncPipeline(c collector.Collector[domain.Article], saver BulkSaver, opts ...PipelineOption) *SyncPipeline {
	p := &SyncPipeline{
		collector: c,
		saver:     saver,
		config: &PipelineConfig{
			Name:      "preview-sync",
			BatchSize: defaultBatchSize,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run returns the last collection error, if any, after flushing what was
// already collected. Failed batches are counted, not returned.
func (p *SyncPipeline) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	slog.Info("Starting pipeline run",
		"pipeline", p.config.Name,
		"batch_size", p.config.BatchSize,
	)

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting articles", "error", err, "pipeline", p.config.Name)
		return Stats{}, err
	}

	var (
		stats   Stats
		batch   = make([]domain.Article, 0, p.config.BatchSize)
		collErr error
	)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		stats.Batches++
		if err := p.saver.SaveBulk(ctx, batch); err != nil {
			slog.Error("Error saving batch", "error", err, "count", len(batch), "pipeline", p.config.Name)
			stats.Failed += len(batch)
		} else {
			stats.Saved += len(batch)
		}
		batch = batch[:0]
	}

loop:
	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled", "pipeline", p.config.Name, "pending_batch", len(batch))
			return stats, ctx.Err()
		case res, ok := <-results:
			if !ok {
				break loop
			}
			if res.Err != nil {
				slog.Error("Error collecting article", "error", res.Err, "pipeline", p.config.Name)
				collErr = res.Err
				continue
			}

			batch = append(batch, res.Result)
			if len(batch) >= p.config.BatchSize {
				flush()
			}
		}
	}
	flush()

	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"duration", time.Since(start),
		"saved", stats.Saved,
		"failed", stats.Failed,
		"batches", stats.Batches,
	)
	return stats, collErr
}
