package magicmg

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"runtime"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// MaxMagicAttempts bounds the candidate draws spent on a single square.
const MaxMagicAttempts = 1_000_000

// highByteLimit rejects candidates that spread the mask poorly into the index bits.
const highByteLimit = 6

var (
	ErrMagicNotFound = errors.New("magic number not found")
	ErrInvalidMagic  = errors.New("invalid magic number")
)

// SearchState tracks one (square, slider) magic through its search.
type SearchState uint8

const (
	Uninitialized SearchState = iota
	Searching
	Found
	Failed
)

func (s SearchState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("SearchState(%d)", uint8(s))
}

type MagicEntry struct {
	Mask  uint64
	Magic uint64
	Bits  int
	State SearchState
}

func (e *MagicEntry) index(occupancy uint64) uint64 {
	return ((occupancy & e.Mask) * e.Magic) >> uint(64-e.Bits)
}

type MagicOptions struct {
	Seed        uint32
	MaxAttempts int
	// Strict aborts initialization when a square exhausts its attempts. Otherwise
	// the square keeps a zero magic and its lookups are meaningless.
	Strict bool
}

func DefaultMagicOptions() MagicOptions {
	return MagicOptions{Seed: DefaultSeed, MaxAttempts: MaxMagicAttempts, Strict: true}
}

// MagicIndex answers sliding attack queries with one multiply and shift per lookup.
type MagicIndex struct {
	seed        uint32
	bishop      [64]MagicEntry
	rook        [64]MagicEntry
	bishopTable [64][512]uint64
	rookTable   [64][4096]uint64
}

// subsetTable enumerates every occupancy of the relevant mask together with its
// ray-traced attack set, in EnumerateSubset order.
type subsetTable struct {
	occupancy []uint64
	attacks   []uint64
}

func newSubsetTable(kind SliderKind, sq Square) subsetTable {
	mask := RelevantMask(kind, sq)
	n := bits.OnesCount64(mask)
	t := subsetTable{
		occupancy: make([]uint64, 1<<n),
		attacks:   make([]uint64, 1<<n),
	}
	for i := range t.occupancy {
		occ := EnumerateSubset(mask, n, i)
		t.occupancy[i] = occ
		t.attacks[i] = FullMove(kind, sq, occ)
	}
	return t
}

// collisionFree reports whether magic maps every subset to a slot that holds
// either nothing or the same attack set. Attack sets are never empty, so a zero
// slot is free.
func (t subsetTable) collisionFree(magic uint64, shift uint, scratch []uint64) bool {
	clear(scratch)
	for i, occ := range t.occupancy {
		idx := (occ * magic) >> shift
		switch scratch[idx] {
		case 0:
			scratch[idx] = t.attacks[i]
		case t.attacks[i]:
		default:
			return false
		}
	}
	return true
}

// FindMagic draws candidates from rng until one indexes every occupancy subset
// of the slider's relevant mask on sq without a harmful collision. It returns
// the magic and the number of candidates drawn.
func FindMagic(rng *XorShift32, kind SliderKind, sq Square, maxAttempts int) (uint64, int, error) {
	mask := RelevantMask(kind, sq)
	n := bits.OnesCount64(mask)
	shift := uint(64 - n)
	table := newSubsetTable(kind, sq)
	scratch := make([]uint64, 1<<n)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		magic := rng.MagicCandidate()
		if bits.OnesCount64((mask*magic)&0xFF00000000000000) > highByteLimit {
			continue
		}
		if table.collisionFree(magic, shift, scratch) {
			return magic, attempt, nil
		}
	}
	return 0, maxAttempts, fmt.Errorf("%s on %s after %d attempts: %w", kind, sq, maxAttempts, ErrMagicNotFound)
}

// NewMagicIndex searches magics for all 128 (square, slider) pairs, square by
// square with the bishop first, then fills the attack tables.
func NewMagicIndex(opts MagicOptions) (*MagicIndex, error) {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = MaxMagicAttempts
	}
	rng := NewXorShift32(opts.Seed)
	m := &MagicIndex{seed: rng.State()}
	total := 0
	for i := 0; i < 64; i++ {
		sq := Square(i)
		for _, kind := range []SliderKind{SliderBishop, SliderRook} {
			e := m.entry(kind, sq)
			e.Mask = RelevantMask(kind, sq)
			e.Bits = bits.OnesCount64(e.Mask)
			e.State = Searching

			magic, attempts, err := FindMagic(rng, kind, sq, opts.MaxAttempts)
			total += attempts
			if err != nil {
				if opts.Strict {
					return nil, err
				}
				log.Error().Err(err).Msg("continuing with degenerate magic")
				e.State = Failed
				continue
			}
			e.Magic = magic
			e.State = Found
			log.Debug().Stringer("piece", kind).Stringer("square", sq).
				Int("attempts", attempts).Msgf("magic %#x", magic)
		}
	}
	m.buildTables()
	log.Debug().Uint32("seed", m.seed).Int("attempts", total).Msg("magic search complete")
	return m, nil
}

// NewMagicIndexFromSet loads known magics, rejecting any that collide.
func NewMagicIndexFromSet(set MagicSet) (*MagicIndex, error) {
	m := &MagicIndex{seed: set.Seed}
	var scratch []uint64
	for i := 0; i < 64; i++ {
		sq := Square(i)
		for _, kind := range []SliderKind{SliderBishop, SliderRook} {
			e := m.entry(kind, sq)
			e.Mask = RelevantMask(kind, sq)
			e.Bits = bits.OnesCount64(e.Mask)
			e.Magic = set.magic(kind, sq)

			if cap(scratch) < 1<<e.Bits {
				scratch = make([]uint64, 1<<e.Bits)
			}
			table := newSubsetTable(kind, sq)
			if !table.collisionFree(e.Magic, uint(64-e.Bits), scratch[:1<<e.Bits]) {
				e.State = Failed
				return nil, fmt.Errorf("%s on %s (%#x): %w", kind, sq, e.Magic, ErrInvalidMagic)
			}
			e.State = Found
		}
	}
	m.buildTables()
	return m, nil
}

func (m *MagicIndex) entry(kind SliderKind, sq Square) *MagicEntry {
	if kind == SliderBishop {
		return &m.bishop[sq]
	}
	return &m.rook[sq]
}

// Entry returns a copy of the magic entry for kind on sq.
func (m *MagicIndex) Entry(kind SliderKind, sq Square) MagicEntry {
	return *m.entry(kind, sq)
}

func (m *MagicIndex) buildTables() {
	for i := 0; i < 64; i++ {
		sq := Square(i)
		b := &m.bishop[sq]
		for j := 0; j < 1<<b.Bits; j++ {
			occ := EnumerateSubset(b.Mask, b.Bits, j)
			m.bishopTable[sq][b.index(occ)] = FullMove(SliderBishop, sq, occ)
		}
		r := &m.rook[sq]
		for j := 0; j < 1<<r.Bits; j++ {
			occ := EnumerateSubset(r.Mask, r.Bits, j)
			m.rookTable[sq][r.index(occ)] = FullMove(SliderRook, sq, occ)
		}
	}
}

func (m *MagicIndex) BishopAttacks(sq Square, occupancy uint64) uint64 {
	return m.bishopTable[sq][m.bishop[sq].index(occupancy)]
}

func (m *MagicIndex) RookAttacks(sq Square, occupancy uint64) uint64 {
	return m.rookTable[sq][m.rook[sq].index(occupancy)]
}

// QueenAttacks is the union of the bishop and rook lookups.
func (m *MagicIndex) QueenAttacks(sq Square, occupancy uint64) uint64 {
	return m.BishopAttacks(sq, occupancy) | m.RookAttacks(sq, occupancy)
}

// Attacks dispatches on kind.
func (m *MagicIndex) Attacks(kind SliderKind, sq Square, occupancy uint64) uint64 {
	if kind == SliderBishop {
		return m.BishopAttacks(sq, occupancy)
	}
	return m.RookAttacks(sq, occupancy)
}

// Magics returns the constants in use.
func (m *MagicIndex) Magics() MagicSet {
	set := MagicSet{Seed: m.seed}
	for sq := 0; sq < 64; sq++ {
		set.Bishop[sq] = m.bishop[sq].Magic
		set.Rook[sq] = m.rook[sq].Magic
	}
	return set
}

// Verify compares every table slot reachable from a relevant occupancy with a
// fresh ray trace. The 128 (square, slider) checks run concurrently.
func (m *MagicIndex) Verify(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < 64; i++ {
		sq := Square(i)
		for _, kind := range []SliderKind{SliderBishop, SliderRook} {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				e := m.entry(kind, sq)
				for j := 0; j < 1<<e.Bits; j++ {
					occ := EnumerateSubset(e.Mask, e.Bits, j)
					if got, want := m.Attacks(kind, sq, occ), FullMove(kind, sq, occ); got != want {
						return fmt.Errorf("%s on %s with %s: got %s want %s: %w",
							kind, sq, BitboardString(occ), BitboardString(got), BitboardString(want), ErrInvalidMagic)
					}
				}
				return nil
			})
		}
	}
	return g.Wait()
}

// Fingerprint hashes the magics and attack tables. Two indexes built from the
// same seed produce the same fingerprint on every platform.
func (m *MagicIndex) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}
	for sq := 0; sq < 64; sq++ {
		put(m.bishop[sq].Magic)
		put(m.rook[sq].Magic)
	}
	for sq := 0; sq < 64; sq++ {
		for _, v := range m.bishopTable[sq] {
			put(v)
		}
		for _, v := range m.rookTable[sq] {
			put(v)
		}
	}
	return d.Sum64()
}
