package hashes

// Mersenne Twister core shared by the built-in hash functions. The
// parameters and the twist variants mirror PHP's generator, which is
// what the targeted applications actually run.

const (
	mtN = 624
	mtM = 397

	mtMatrixA = 0x9908b0df
)

func mixBits(u, v uint32) uint32 {
	return (u & 0x80000000) | (v & 0x7fffffff)
}

// phpTwist keys the matrix mask off the low bit of u. That is PHP's
// long-standing deviation from the reference twist; both sides of the
// attack have to agree on it.
func phpTwist(m, u, v uint32) uint32 {
	return m ^ (mixBits(u, v) >> 1) ^ (-(u & 1) & mtMatrixA)
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

func knuthInit(state []uint32, seed uint32) {
	state[0] = seed
	for i := 1; i < len(state); i++ {
		state[i] = 1812433253*(state[i-1]^(state[i-1]>>30)) + uint32(i)
	}
}
