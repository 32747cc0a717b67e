package magicmg

// DefaultSeed is the fixed starting state of the magic search generator.
const DefaultSeed uint32 = 892777658

// XorShift32 is a small deterministic xorshift generator. It is only used to
// propose sparse magic candidates, so it is not suitable for anything that
// needs real randomness.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a generator seeded with seed. Zero is the fixed point of
// xorshift, so it is replaced with DefaultSeed.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &XorShift32{state: seed}
}

// State returns the current internal state.
func (r *XorShift32) State() uint32 { return r.state }

// Uint32 advances the generator (shifts 13, 17, 5) and returns the new state.
func (r *XorShift32) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint64 packs the low 16 bits of four consecutive draws, first draw lowest.
func (r *XorShift32) Uint64() uint64 {
	n1 := uint64(r.Uint32() & 0xFFFF)
	n2 := uint64(r.Uint32() & 0xFFFF)
	n3 := uint64(r.Uint32() & 0xFFFF)
	n4 := uint64(r.Uint32() & 0xFFFF)
	return n1 | n2<<16 | n3<<32 | n4<<48
}

// MagicCandidate ANDs three draws together, which leaves roughly one bit in
// eight set.
func (r *XorShift32) MagicCandidate() uint64 {
	return r.Uint64() & r.Uint64() & r.Uint64()
}
