package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/volleytech/volley-dvw-tools/internal/dvw"
	"github.com/volleytech/volley-dvw-tools/internal/logging"
	"github.com/volleytech/volley-dvw-tools/internal/merge"
)

func main() {
	logging.Init("dvwlint")
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: dvwlint <file.dvw>")
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("lint failed")
	}
}

func run(path string) error {
	if !dvw.IsScoutFile(path) {
		return fmt.Errorf("%w: %s", dvw.ErrNotScoutFile, path)
	}
	f, err := dvw.Read(path)
	if err != nil {
		return err
	}
	start, ok := f.ScoutStart()
	if !ok {
		return fmt.Errorf("%w: %s", dvw.ErrNoScoutSection, path)
	}

	counts := map[byte]int{}
	for _, line := range f.Lines[start:] {
		if code, ok := dvw.ParseCode(line); ok {
			counts[code.Skill]++
		}
	}
	inventory := log.Info().Int("lines", len(f.Lines)).Int("scout_start", start+1)
	for _, skill := range []byte{
		dvw.SkillServe, dvw.SkillReception, dvw.SkillAttack,
		dvw.SkillBlock, dvw.SkillDig, dvw.SkillSet, dvw.SkillFreeball,
	} {
		inventory = inventory.Int(dvw.SkillName(skill), counts[skill])
	}
	inventory.Msg("code inventory")

	for _, profile := range merge.BuiltinProfiles() {
		exchanges, orphans := merge.Extract(f, profile)
		withFollow := 0
		for _, ex := range exchanges {
			if ex.Follow != nil {
				withFollow++
			}
		}
		log.Info().
			Str("profile", profile.Name).
			Int("exchanges", len(exchanges)).
			Int("with_follow", withFollow).
			Int("orphans", orphans).
			Msg("exchange inventory")
	}
	return nil
}
