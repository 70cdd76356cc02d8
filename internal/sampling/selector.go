// Package sampling bounds the number of commits a run has to scan.
package sampling

// SmartSample reduces items to at most maxSamples elements by taking every
// interval-th element, where interval = ceil(len(items) / maxSamples) is
// computed once from the input length. Relative order is preserved and the
// result is deterministic. When len(items) <= maxSamples the input is
// returned unchanged; a non-positive maxSamples also disables sampling.
func SmartSample[T any](items []T, maxSamples int) []T {
	if maxSamples <= 0 || len(items) <= maxSamples {
		return items
	}

	interval := Interval(len(items), maxSamples)

	sample := make([]T, 0, maxSamples)
	for i := 0; i < len(items); i += interval {
		sample = append(sample, items[i])
	}

	// Uneven division can overshoot; drop from the tail.
	if len(sample) > maxSamples {
		sample = sample[:maxSamples]
	}

	return sample
}

// Interval returns ceil(total / maxSamples), never less than 1.
func Interval(total, maxSamples int) int {
	if maxSamples <= 0 || total <= 0 {
		return 1
	}
	interval := (total + maxSamples - 1) / maxSamples
	if interval < 1 {
		return 1
	}
	return interval
}

// KeepStep reports whether the commit at zero-based ordinal survives step
// filtering: the commit at 1-based position ordinal+1 is kept iff that
// position is a multiple of step. A step below 2 keeps everything.
func KeepStep(ordinal, step int) bool {
	if step <= 1 {
		return true
	}
	return (ordinal+1)%step == 0
}
