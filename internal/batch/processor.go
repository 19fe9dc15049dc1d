package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pixelscale/internal/config"
	"pixelscale/internal/imageio"
	"pixelscale/internal/logging"
	"pixelscale/internal/postprocess"
	"pixelscale/internal/raster"
	"pixelscale/internal/resample"
)

// Config holds all shared settings for a batch run.
type Config struct {
	InputDir    string
	OutputDir   string
	Targets     []config.Target
	Method      resample.Method
	Premultiply bool
	Trim        bool
	Format      imageio.Format
	Quality     int
	Workers     int
	RowWorkers  int

	// ProgressInterval defaults to two seconds.
	ProgressInterval time.Duration
}

// FromConfig converts a resolved, validated file config.
func FromConfig(c config.Config) (Config, error) {
	m, err := resample.ParseMethod(c.Method)
	if err != nil {
		return Config{}, err
	}
	f, err := imageio.ParseFormat(c.Format)
	if err != nil {
		return Config{}, err
	}
	return Config{
		InputDir:    c.InputDir,
		OutputDir:   c.OutputDir,
		Targets:     c.Targets,
		Method:      m,
		Premultiply: c.Premultiply,
		Trim:        c.Trim,
		Format:      f,
		Quality:     c.Quality,
		Workers:     c.Workers,
		RowWorkers:  c.RowWorkers,
	}, nil
}

// Output is one encoded file.
type Output struct {
	Target string `json:"target"`
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Result holds the outcome of processing one source file.
type Result struct {
	Source  string
	Width   int
	Height  int
	Outputs []Output
	Success bool
	Error   string
}

// Run processes all files using a worker pool. Results are in input order.
func Run(ctx context.Context, cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := max(cfg.Workers, 1)
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					slog.InfoContext(ctx, "progress", "done", p, "total", total, "files_per_sec", rate)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		wctx := logging.AppendCtx(ctx, slog.Int("worker", w))
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(wctx, cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(ctx context.Context, cfg Config, path string) Result {
	res := Result{Source: path}
	fail := func(err error) Result {
		res.Error = err.Error()
		slog.WarnContext(ctx, "resize failed", "source", path, "error", err)
		return res
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	src, err := imageio.Load(path, raster.BGRA)
	if err != nil {
		return fail(err)
	}
	if cfg.Trim {
		if src, err = postprocess.CropTransparent(src); err != nil {
			return fail(err)
		}
	}
	res.Width, res.Height = src.Width, src.Height

	stem := outputStem(cfg.InputDir, path)
	for _, t := range cfg.Targets {
		dst, err := cfg.Resize(ctx, src, t)
		if err != nil {
			return fail(fmt.Errorf("target %s: %w", t.Name, err))
		}
		out := filepath.Join(cfg.OutputDir, t.Name, stem+cfg.Format.Ext())
		if err := imageio.Save(out, dst, imageio.Options{Quality: cfg.Quality}); err != nil {
			return fail(err)
		}
		res.Outputs = append(res.Outputs, Output{
			Target: t.Name,
			Path:   out,
			Width:  dst.Width,
			Height: dst.Height,
		})
	}

	slog.DebugContext(ctx, "resized", "source", path, "outputs", len(res.Outputs))
	res.Success = true
	return res
}

// TargetSize returns the destination dimensions of t for a w x h source.
func TargetSize(t config.Target, w, h int) (int, int, error) {
	switch {
	case t.Scale > 0:
		return resample.ScaleDimensions(w, h, t.Scale)
	case t.Fit:
		return resample.FitDimensions(w, h, t.Width, t.Height)
	default:
		return t.Width, t.Height, nil
	}
}

// Resize produces target t from src with the configured method, alpha
// handling and row parallelism.
func (cfg Config) Resize(ctx context.Context, src *raster.Buffer, t config.Target) (*raster.Buffer, error) {
	w, h, err := TargetSize(t, src.Width, src.Height)
	if err != nil {
		return nil, err
	}

	opts := []resample.Option{resample.WithWorkers(cfg.RowWorkers)}
	var dst *raster.Buffer
	if cfg.Premultiply {
		dst, err = postprocess.ResamplePremultiplied(ctx, src, w, h, cfg.Method, opts...)
	} else {
		dst, err = resample.Resample(ctx, src, w, h, cfg.Method, opts...)
	}
	if err != nil {
		return nil, err
	}

	if t.Fit && t.Pad {
		return postprocess.Center(dst, t.Width, t.Height)
	}
	return dst, nil
}

// outputStem is the source path relative to the input dir, without its
// extension, so nested inputs keep their layout.
func outputStem(inputDir, path string) string {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
