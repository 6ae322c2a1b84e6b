package parallel

import "sync/atomic"

// MinBandRows is the smallest band SplitRows produces, except for the last
// band of a short plane. Smaller bands cost more in scheduling than they save.
const MinBandRows = 8

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0 int
	Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows cuts height rows into at most parts contiguous bands of nearly
// equal size, covering every row exactly once in order. Bands hold at least
// MinBandRows rows unless the whole plane is shorter.
func SplitRows(height, parts int) []Band {
	if height <= 0 {
		return nil
	}
	parts = max(parts, 1)
	parts = min(parts, max(height/MinBandRows, 1))

	bands := make([]Band, 0, parts)
	base := height / parts
	extra := height % parts
	y := 0
	for i := range parts {
		n := base
		if i < extra {
			n++
		}
		bands = append(bands, Band{Y0: y, Y1: y + n})
		y += n
	}
	return bands
}

// ForEachBand splits height rows across the pool's workers and runs fn once
// per band, returning the sum of fn's results. With a nil pool, or a single
// band, fn runs on the caller's goroutine.
func ForEachBand(pool *WorkerPool, height int, fn func(Band) int) int {
	workers := 1
	if pool != nil {
		workers = pool.Workers()
	}

	bands := SplitRows(height, workers)
	if pool == nil || len(bands) <= 1 {
		total := 0
		for _, b := range bands {
			total += fn(b)
		}
		return total
	}

	var total atomic.Int64
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			total.Add(int64(fn(b)))
		}
	}
	pool.ExecuteAll(work)
	return int(total.Load())
}
