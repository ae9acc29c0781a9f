package kernel

// Add adds a step of height delta at sub-sample fraction frac (rate.FracBits
// wide) into dst[0:Width]. Adjacent phase rows are blended with a 15-bit
// weight. The cells receive delta*DeltaUnit in total.
func (t *Table) Add(dst []int64, frac uint32, delta int32) {
	dst = dst[:Width]

	phase := frac >> phaseShift
	interp := int64(frac & interpMask)

	d := int64(delta)
	d2 := (d * interp) >> phaseShift
	d -= d2

	lo := &t.rows[phase]
	hi := &t.rows[phase+1]
	for k := range dst {
		dst[k] += int64(lo[k])*d + int64(hi[k])*d2
	}
}

// AddFast adds a linearly interpolated two-tap step into dst[HalfWidth-1]
// and dst[HalfWidth]. It has the same latency and DC gain as Add but no
// band limiting.
func AddFast(dst []int64, frac uint32, delta int32) {
	dst = dst[:Width]

	interp := int64(frac >> fastShift)
	d := int64(delta)
	d2 := d * interp

	dst[fastLo] += d*DeltaUnit - d2
	dst[fastHi] += d2
}

// Add adds a step using the default table.
func Add(dst []int64, frac uint32, delta int32) {
	Default().Add(dst, frac, delta)
}
