package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"chess-rules/magicmg"
)

func main() {
	seed := pflag.Uint32("seed", magicmg.DefaultSeed, "xorshift seed")
	attempts := pflag.Int("attempts", magicmg.MaxMagicAttempts, "candidate draws per square")
	out := pflag.StringP("out", "o", "", "write the YAML magic set here instead of stdout")
	verbose := pflag.BoolP("verbose", "v", false, "log every square")
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(*seed, *attempts, *out); err != nil {
		log.Error().Err(err).Msg("magicgen failed")
		os.Exit(1)
	}
}

func run(seed uint32, attempts int, out string) error {
	start := time.Now()
	idx, err := magicmg.NewMagicIndex(magicmg.MagicOptions{Seed: seed, MaxAttempts: attempts, Strict: true})
	if err != nil {
		return err
	}
	if err := idx.Verify(context.Background()); err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).
		Str("fingerprint", fmt.Sprintf("%016x", idx.Fingerprint())).Msg("magics found")

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return magicmg.WriteMagicSet(w, idx.Magics())
}
