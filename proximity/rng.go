package proximity

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// seed == 0 selects defaultRNGSeed; any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, giving uncorrelated child seeds for neighbouring ids.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streams derives one independent RNG per random seed set. All streams are
// created up front from seed, so the background sample does not depend on
// how workers are scheduled.
//
// math/rand.Rand is not goroutine-safe; each stream belongs to one worker.
func streams(seed int64, n int) []*rand.Rand {
	base := rngFromSeed(seed)
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewSource(deriveSeed(base.Int63(), uint64(i))))
	}

	return out
}

// shuffleInts is an in-place Fisher–Yates shuffle.
func shuffleInts(a []int, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
