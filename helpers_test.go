package gradsmooth

// Test helper functions shared across gradsmooth tests.

// stepImage builds a 5x5 image whose every channel is a vertical step edge:
// columns 0-1 hold 10, columns 2-4 hold 200.
func stepImage() *Image {
	m, _ := NewImage(5, 5)
	for y := range 5 {
		for x := range 5 {
			v := 10.0
			if x >= 2 {
				v = 200
			}
			for c := range Channels {
				m.Set(x, y, c, v)
			}
		}
	}
	return m
}

// noiseImage fills an image with deterministic pseudo-random 8-bit values.
func noiseImage(w, h int, seed uint32) *Image {
	m, _ := NewImage(w, h)
	s := seed
	for i := range m.Pix {
		s = s*1664525 + 1013904223
		m.Pix[i] = float64(s >> 24)
	}
	return m
}

// filledImage creates an image with every sample set to v.
func filledImage(w, h int, v float64) *Image {
	m, _ := NewImage(w, h)
	for i := range m.Pix {
		m.Pix[i] = v
	}
	return m
}

// channelRows returns channel c of m as rows.
func channelRows(m *Image, c int) [][]float64 {
	rows := make([][]float64, m.Height)
	for y := range rows {
		rows[y] = make([]float64, m.Width)
		for x := range rows[y] {
			rows[y][x] = m.At(x, y, c)
		}
	}
	return rows
}

// samePix reports whether a and b hold identical samples.
func samePix(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// firstDiff returns the index of the first differing sample, or -1.
func firstDiff(a, b []float64) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}
