package blip

import (
	"fmt"

	"github.com/tphakala/go-audio-blip/internal/kernel"
)

// ReadSamples reads and removes at most count samples into out and returns
// the number read. With stereo set, samples are written to every other
// element of out and the elements between are left untouched, so two
// buffers can fill one interleaved slice.
func (b *Buffer) ReadSamples(out []int16, count int, stereo bool) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	n := min(count, b.avail)
	if n == 0 {
		return 0, nil
	}

	step := 1
	if stereo {
		step = stereoStride
	}
	if need := (n-1)*step + 1; len(out) < need {
		return 0, fmt.Errorf("%w: %d samples at stride %d need %d elements, have %d",
			ErrBufferTooSmall, n, step, need, len(out))
	}

	sum := b.integrator
	for i, cell := range b.samples[:n] {
		sum += cell
		out[i*step] = clamp16(sum >> kernel.DeltaBits)
	}
	b.integrator = sum

	b.removeSamples(n)
	return n, nil
}

// removeSamples drops the first n cells, moving the unread samples, the
// pending kernel tail and any deltas added past the frame end to the front.
func (b *Buffer) removeSamples(n int) {
	used := max(b.avail+bufExtra, b.written)
	remain := used - n
	b.avail -= n
	b.written = max(b.written-n, 0)

	copy(b.samples, b.samples[n:used])
	clear(b.samples[remain:used])
}

func clamp16(v int64) int16 {
	if v > sampleMax {
		return sampleMax
	}
	if v < sampleMin {
		return sampleMin
	}
	return int16(v)
}
