package image

import "sync"

// Pool is a thread-safe pool for reusing Plane buffers.
//
// Pool groups planes by their dimensions so that multi-pass smoothing can
// recycle the previous pass's buffers instead of allocating a fresh plane
// for every pass of every channel.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Plane
	maxSize int // max planes per bucket
}

// poolKey identifies a bucket of identically sized planes.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a plane pool retaining at most maxPerBucket planes of each
// size. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Plane),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed plane of the given size, reusing a pooled one when
// available. It returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) *Plane {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		plane := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		clear(plane.Pix)
		return plane
	}
	p.mu.Unlock()

	plane, err := NewPlane(width, height)
	if err != nil {
		return nil
	}
	return plane
}

// Put returns a plane to the pool. The caller must not use it afterwards.
// Planes whose sample slice does not match their dimensions are discarded.
func (p *Pool) Put(plane *Plane) {
	if plane == nil || plane.Validate() != nil {
		return
	}

	key := poolKey{width: plane.Width, height: plane.Height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, plane)
}

// Len returns the number of pooled planes across all sizes.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0
	for _, bucket := range p.buckets {
		total += len(bucket)
	}
	return total
}
