package blip

// Common output sample rates.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateSpeech is a common low-bandwidth rate.
	RateSpeech = 22050
)

// Input clock rates of common sound hardware, in Hz.
const (
	// ClockNES is the NTSC NES/Famicom CPU clock.
	ClockNES = 1789772.727

	// ClockNESPAL is the PAL NES CPU clock.
	ClockNESPAL = 1662607.0

	// ClockSMS is the NTSC Master System and Game Gear PSG clock.
	ClockSMS = 3579545.0

	// ClockGameBoy is the Game Boy master clock.
	ClockGameBoy = 4194304.0

	// ClockC64PAL is the PAL Commodore 64 SID clock.
	ClockC64PAL = 985248.0

	// ClockTIA is the NTSC Atari 2600 TIA audio update rate, two updates
	// per scanline. It is below common output rates.
	ClockTIA = 3579545.0 / 114
)

// defaultLatencyDivisor sizes convenience buffers to a tenth of a second.
const defaultLatencyDivisor = 10

// NewForRates creates a buffer for the given rates holding a tenth of a
// second of output.
func NewForRates(clockRate, sampleRate float64) (*Buffer, error) {
	return NewWithConfig(&Config{
		Size:       defaultSize(sampleRate),
		ClockRate:  clockRate,
		SampleRate: sampleRate,
	})
}

// NewStereoForRates is the stereo version of NewForRates.
func NewStereoForRates(clockRate, sampleRate float64) (*StereoBuffer, error) {
	return NewStereoWithConfig(&Config{
		Size:       defaultSize(sampleRate),
		ClockRate:  clockRate,
		SampleRate: sampleRate,
	})
}

func defaultSize(sampleRate float64) int {
	if !(sampleRate > 0 && sampleRate <= MaxSize*defaultLatencyDivisor) {
		return 0
	}
	return max(1, int(sampleRate/defaultLatencyDivisor))
}
