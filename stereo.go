package blip

import "fmt"

// StereoBuffer is a left/right pair of buffers read into one interleaved
// slice. Both channels share rates and frame timing.
type StereoBuffer struct {
	Left  *Buffer
	Right *Buffer
}

// NewStereo creates a pair of buffers, each holding size samples.
func NewStereo(size int) (*StereoBuffer, error) {
	return NewStereoWithConfig(&Config{Size: size})
}

// NewStereoWithConfig creates a pair of buffers from cfg.
func NewStereoWithConfig(cfg *Config) (*StereoBuffer, error) {
	left, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	right, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &StereoBuffer{Left: left, Right: right}, nil
}

// SetRates sets the rates of both channels. If either channel rejects
// them, neither changes.
func (s *StereoBuffer) SetRates(clockRate, sampleRate float64) error {
	if err := s.Left.checkRates(clockRate, sampleRate); err != nil {
		return err
	}
	if err := s.Right.checkRates(clockRate, sampleRate); err != nil {
		return err
	}
	if err := s.Left.SetRates(clockRate, sampleRate); err != nil {
		return err
	}
	return s.Right.SetRates(clockRate, sampleRate)
}

// Clear clears both channels.
func (s *StereoBuffer) Clear() {
	s.Left.Clear()
	s.Right.Clear()
}

// ClocksNeeded returns the frame length that makes samples more stereo
// samples available. Like Buffer.ClocksNeeded it is exact only when the
// clock rate is at least the sample rate.
func (s *StereoBuffer) ClocksNeeded(samples int) (int, error) {
	if _, err := s.Right.ClocksNeeded(samples); err != nil {
		return 0, err
	}
	return s.Left.ClocksNeeded(samples)
}

// EndFrame ends the current frame on both channels. If either channel
// cannot end the frame, neither does.
func (s *StereoBuffer) EndFrame(clocks uint32) error {
	if _, err := s.Left.checkEnd(clocks); err != nil {
		return err
	}
	if _, err := s.Right.checkEnd(clocks); err != nil {
		return err
	}
	if err := s.Left.EndFrame(clocks); err != nil {
		return err
	}
	return s.Right.EndFrame(clocks)
}

// SamplesAvail returns the number of stereo samples ready on both channels.
func (s *StereoBuffer) SamplesAvail() int {
	return min(s.Left.SamplesAvail(), s.Right.SamplesAvail())
}

// ReadSamples reads at most count stereo samples into out as interleaved
// left/right pairs and returns the number of pairs read.
func (s *StereoBuffer) ReadSamples(out []int16, count int) (int, error) {
	if s.Left.closed || s.Right.closed {
		return 0, ErrClosed
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	n := min(count, s.SamplesAvail())
	if n == 0 {
		return 0, nil
	}
	if len(out) < stereoStride*n {
		return 0, fmt.Errorf("%w: %d stereo samples need %d elements, have %d",
			ErrBufferTooSmall, n, stereoStride*n, len(out))
	}

	if _, err := s.Left.ReadSamples(out, n, Stereo); err != nil {
		return 0, err
	}
	if _, err := s.Right.ReadSamples(out[1:], n, Stereo); err != nil {
		return 0, err
	}
	return n, nil
}

// Close closes both channels.
func (s *StereoBuffer) Close() error {
	if s == nil {
		return nil
	}
	if err := s.Left.Close(); err != nil {
		return err
	}
	return s.Right.Close()
}
