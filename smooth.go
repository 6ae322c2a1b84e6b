package gradsmooth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gradsmooth/internal/filter"
	"github.com/gogpu/gradsmooth/internal/image"
	"github.com/gogpu/gradsmooth/internal/parallel"
)

// Smooth applies the gradient-analysis filter to a three-channel image and
// returns a new image of the same shape. src is not modified.
//
// kernelSize is the side of the square window and must be a positive odd
// integer. Each channel is filtered independently. Output samples are
// integral: every filtered pixel is rounded half to even, and pixels whose
// whole window is flat keep their source value. No clamping is performed.
func Smooth(src *Image, kernelSize int, opts ...Option) (*Image, error) {
	return SmoothContext(context.Background(), src, kernelSize, opts...)
}

// SmoothContext is Smooth with cancellation. The context is checked before
// every pass of every channel; a pass already running completes.
func SmoothContext(ctx context.Context, src *Image, kernelSize int, opts ...Option) (*Image, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(kernelSize, &o); err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	var seeds [Channels]*Stats
	if o.fields != nil {
		for c := range Channels {
			s, err := o.fields.Channels[c].seed(src.Width, src.Height)
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", c, err)
			}
			seeds[c] = s
		}
	}

	log := o.log()
	start := time.Now()

	r := newRunner(kernelSize, &o)
	defer r.close()

	planes := src.Split()
	var out [Channels]*image.Plane

	if o.workers == 1 {
		for c := range Channels {
			p, err := r.channel(ctx, c, planes[c], seeds[c])
			if err != nil {
				return nil, err
			}
			out[c] = p
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for c := range Channels {
			g.Go(func() error {
				p, err := r.channel(gctx, c, planes[c], seeds[c])
				if err != nil {
					return err
				}
				out[c] = p
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	dst, err := image.Merge(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	log.Info("gradsmooth: image smoothed",
		slog.Int("width", src.Width),
		slog.Int("height", src.Height),
		slog.Int("kernel", kernelSize),
		slog.Int("passes", o.passes),
		slog.Bool("seeded", o.fields != nil),
		slog.Duration("elapsed", time.Since(start)))

	return dst, nil
}

// SmoothPlane applies the filter to a single-channel plane, the grayscale
// form of Smooth. WithFields supplies first-pass data through Channels[0].
func SmoothPlane(src *Plane, kernelSize int, opts ...Option) (*Plane, error) {
	return SmoothPlaneContext(context.Background(), src, kernelSize, opts...)
}

// SmoothPlaneContext is SmoothPlane with cancellation.
func SmoothPlaneContext(ctx context.Context, src *Plane, kernelSize int, opts ...Option) (*Plane, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(kernelSize, &o); err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	var seed *Stats
	if o.fields != nil {
		s, err := o.fields.Channels[0].seed(src.Width, src.Height)
		if err != nil {
			return nil, err
		}
		seed = s
	}

	r := newRunner(kernelSize, &o)
	defer r.close()

	return r.channel(ctx, 0, src, seed)
}

// validate checks the call parameters. It runs before any work so that a
// bad call never yields a partial result.
func validate(kernelSize int, o *options) error {
	if !filter.IsValidKernelSize(kernelSize) {
		return fmt.Errorf("%w: kernel size must be a positive odd integer, got %d", ErrInvalidParameter, kernelSize)
	}
	if o.passes < 1 {
		return fmt.Errorf("%w: pass count must be at least 1, got %d", ErrInvalidParameter, o.passes)
	}
	if o.workers < 0 {
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidParameter, o.workers)
	}
	return nil
}

// runner holds the per-call resources shared by all channels: the row-band
// worker pool and the plane buffer pool.
type runner struct {
	kernel  int
	passes  int
	pool    *parallel.WorkerPool
	buffers *image.Pool
	log     *slog.Logger
}

func newRunner(kernelSize int, o *options) *runner {
	r := &runner{
		kernel:  kernelSize,
		passes:  o.passes,
		buffers: image.NewPool(2 * Channels),
		log:     o.log(),
	}
	if o.workers != 1 {
		r.pool = parallel.NewWorkerPool(o.workers)
	}
	return r
}

func (r *runner) close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// channel runs every pass over one plane and returns the final output.
// src itself is never written or recycled.
func (r *runner) channel(ctx context.Context, c int, src *image.Plane, seed *Stats) (*image.Plane, error) {
	plan := newPassPlan(seed)
	cur := src

	for pass := 1; pass <= r.passes; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stats, seeded := plan.next(cur)

		dst := r.buffers.Get(cur.Width, cur.Height)
		a, err := filter.NewAverager(cur, stats, r.kernel, dst)
		if err != nil {
			return nil, fmt.Errorf("channel %d pass %d: %w", c, pass, err)
		}

		unchanged := parallel.ForEachBand(r.pool, cur.Height, func(b parallel.Band) int {
			return a.ApplyRows(b.Y0, b.Y1)
		})

		if r.log.Enabled(ctx, slog.LevelDebug) {
			r.log.Debug("gradsmooth: pass complete",
				slog.Int("channel", c),
				slog.Int("pass", pass),
				slog.Bool("seeded", seeded),
				slog.Int("flat", stats.FlatCount()),
				slog.Int("unchanged", unchanged))
		}

		if cur != src {
			r.buffers.Put(cur)
		}
		cur = dst
	}

	return cur, nil
}
