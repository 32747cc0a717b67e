package magicmg

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MagicSet is one magic per square for each slider, plus the seed that found them.
type MagicSet struct {
	Seed   uint32
	Bishop [64]uint64
	Rook   [64]uint64
}

func (s *MagicSet) magic(kind SliderKind, sq Square) uint64 {
	if kind == SliderBishop {
		return s.Bishop[sq]
	}
	return s.Rook[sq]
}

// magicSetFile is the on-disk layout. Magics are hex strings so the file
// stays readable and round-trips values above MaxInt64.
type magicSetFile struct {
	Seed   uint32   `yaml:"seed"`
	Bishop []string `yaml:"bishop"`
	Rook   []string `yaml:"rook"`
}

// WriteMagicSet encodes set as YAML.
func WriteMagicSet(w io.Writer, set MagicSet) error {
	f := magicSetFile{
		Seed:   set.Seed,
		Bishop: make([]string, 64),
		Rook:   make([]string, 64),
	}
	for sq := 0; sq < 64; sq++ {
		f.Bishop[sq] = fmt.Sprintf("%#016x", set.Bishop[sq])
		f.Rook[sq] = fmt.Sprintf("%#016x", set.Rook[sq])
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return err
	}
	return enc.Close()
}

// ReadMagicSet decodes a YAML magic set. It does not check the magics; pass
// the result to NewMagicIndexFromSet for that.
func ReadMagicSet(r io.Reader) (MagicSet, error) {
	var f magicSetFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return MagicSet{}, fmt.Errorf("decoding magic set: %w", err)
	}
	set := MagicSet{Seed: f.Seed}
	if err := parseMagics(&set.Bishop, f.Bishop, SliderBishop); err != nil {
		return MagicSet{}, err
	}
	if err := parseMagics(&set.Rook, f.Rook, SliderRook); err != nil {
		return MagicSet{}, err
	}
	return set, nil
}

func parseMagics(dst *[64]uint64, src []string, kind SliderKind) error {
	if len(src) != 64 {
		return fmt.Errorf("%s magics: want 64 entries, got %d: %w", kind, len(src), ErrInvalidMagic)
	}
	for i, s := range src {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return fmt.Errorf("%s magic %d: %w", kind, i, err)
		}
		dst[i] = v
	}
	return nil
}
