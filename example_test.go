package blip_test

import (
	"fmt"
	"log"

	blip "github.com/tphakala/go-audio-blip"
)

// A square wave at 1 kHz, produced in fixed-size blocks.
func Example_squareWave() {
	const sampleRate = 44100
	const clockRate = sampleRate * 256

	buf, err := blip.NewForRates(clockRate, sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Close()

	halfPeriod := clockRate / 1000 / 2
	time, level, amp := 0, int32(0), int32(10000)

	block := make([]int16, 1024)
	for range 4 {
		clocks, err := buf.ClocksNeeded(len(block))
		if err != nil {
			log.Fatal(err)
		}

		for ; time < clocks; time += halfPeriod {
			if err := buf.AddDelta(uint32(time), amp-level); err != nil {
				log.Fatal(err)
			}
			level = amp
			amp = -amp
		}
		time -= clocks

		if err := buf.EndFrame(uint32(clocks)); err != nil {
			log.Fatal(err)
		}
		n, err := buf.ReadSamples(block, len(block), blip.Mono)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(n)
	}
	// Output:
	// 1024
	// 1024
	// 1024
	// 1024
}

// A saw wave built from small rising steps and one large drop per cycle.
func Example_sawWave() {
	buf, err := blip.NewWithConfig(&blip.Config{
		Size:       64,
		ClockRate:  80000,
		SampleRate: 8000,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Close()

	// Four steps of 1000 every 30 clocks, then drop back to zero.
	for i := range 4 {
		_ = buf.AddDelta(uint32(i*30), 1000)
	}
	_ = buf.AddDelta(120, -4000)

	_ = buf.EndFrame(600)
	out := make([]int16, buf.SamplesAvail())
	n, _ := buf.ReadSamples(out, len(out), blip.Mono)
	fmt.Println(n, out[n-1])
	// Output: 60 0
}

func ExampleStereoBuffer() {
	pair, err := blip.NewStereoForRates(blip.ClockGameBoy, blip.RateCD)
	if err != nil {
		log.Fatal(err)
	}
	defer pair.Close()

	_ = pair.Left.AddDelta(0, 3000)
	_ = pair.Right.AddDelta(0, -3000)

	clocks, _ := pair.ClocksNeeded(32)
	_ = pair.EndFrame(uint32(clocks))

	out := make([]int16, 64)
	n, _ := pair.ReadSamples(out, 32)
	fmt.Println(n, out[62], out[63])
	// Output: 32 3000 -3000
}
