// Package blip synthesizes band-limited 16-bit PCM from amplitude deltas.
//
// A caller such as a sound chip emulator describes its output as a series
// of steps: at input clock t the waveform changes by delta. A [Buffer]
// places each step on the output sample time line with a band-limited
// kernel, so a square wave clocked at several megahertz comes out at
// 44.1 kHz without aliasing. The input clock and output sample rate are
// independent and need not be integer multiples of each other.
//
// # Quick Start
//
//	buf, err := blip.NewWithConfig(&blip.Config{
//	    Size:       4410,
//	    ClockRate:  blip.ClockNES,
//	    SampleRate: 44100,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Close()
//
//	// Describe one time frame of output.
//	_ = buf.AddDelta(100, +8000)
//	_ = buf.AddDelta(500, -8000)
//	_ = buf.EndFrame(1000)
//
//	out := make([]int16, buf.SamplesAvail())
//	n, _ := buf.ReadSamples(out, len(out), blip.Mono)
//
// # Time Frames
//
// Deltas are timestamped in clocks relative to the start of the current
// time frame. [Buffer.EndFrame] closes a frame of the given length, makes
// the samples it covers available and starts the next frame at clock 0.
// A frame may produce at most [MaxFrame] samples. To produce an exact
// number of samples per frame, ask [Buffer.ClocksNeeded] for the frame
// length first.
//
// # Quality
//
// [Buffer.AddDelta] uses a 16-tap kernel interpolated between 32 phases.
// [Buffer.AddDeltaFast] uses a two-tap linear step, which is cheaper but
// lets more aliasing through. Both add exactly the same total amplitude,
// so they may be mixed freely in one buffer.
//
// # Stereo
//
// Two buffers can share one interleaved output slice: read the left
// channel into out[0:] and the right into out[1:] with stride 2.
// [StereoBuffer] does this for a pair of buffers.
//
// # Concurrency
//
// A Buffer is not safe for concurrent use. The kernel table is immutable
// and shared by all buffers.
package blip
