package merge

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/volleytech/volley-dvw-tools/internal/dvw"
)

// Options controls one merge pass.
type Options struct {
	// StartLine is a 1-based line number opening the merge window. Zero
	// means start after the [3SCOUT] header.
	StartLine int
	// Strict aborts on a minimal-key mismatch or exhausted codes instead
	// of skipping past them.
	Strict bool
}

// Change records one substituted line.
type Change struct {
	Line int // 1-based
	Old  string
	New  string
}

// Report summarizes one merge pass.
type Report struct {
	Primaries  int // primary codes substituted
	Follows    int // follow codes substituted
	Mismatches int // exchanges skipped on key mismatch
	Orphans    int // follow codes with no open exchange in the codes file
	Leftover   int // exchanges never consumed
	Exhausted  bool
	Changes    []Change
}

// Merger substitutes verbose codes into a skeleton file for one profile.
type Merger struct {
	profile Profile
	opts    Options
}

func New(p Profile, opts Options) (*Merger, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if opts.StartLine < 0 {
		return nil, fmt.Errorf("merge: negative start line %d", opts.StartLine)
	}
	return &Merger{profile: p, opts: opts}, nil
}

// Run merges codes extracted from the codes file into the skeleton, mutating
// skeleton.Lines. The skeleton file on disk is untouched; writing is the
// caller's decision.
func (m *Merger) Run(skeleton, codes *dvw.File) (Report, error) {
	exchanges, orphans := Extract(codes, m.profile)
	report := Report{Orphans: orphans}
	if len(exchanges) == 0 {
		return report, fmt.Errorf("%w: %s", ErrNoExchanges, codes.Path)
	}

	start := m.opts.StartLine - 1
	if m.opts.StartLine == 0 {
		idx, ok := skeleton.ScoutStart()
		if !ok {
			return report, fmt.Errorf("%w: %s", dvw.ErrNoScoutSection, skeleton.Path)
		}
		start = idx
	}

	next := 0
	for i := start; i < len(skeleton.Lines); i++ {
		code, ok := dvw.ParseCode(skeleton.Lines[i])
		if !ok || code.Skill != m.profile.Primary {
			continue
		}
		if next == len(exchanges) {
			report.Exhausted = true
			if m.opts.Strict {
				return report, fmt.Errorf("%w: line %d code %s unmatched",
					ErrCodesExhausted, i+1, code.Token)
			}
			log.Warn().
				Err(ErrCodesExhausted).
				Int("line", i+1).
				Str("code", code.Token).
				Msg("skeleton codes remain but the codes file is exhausted")
			break
		}
		ex := exchanges[next]
		next++

		if code.Key() != ex.Primary.Key() {
			report.Mismatches++
			if m.opts.Strict {
				return report, fmt.Errorf("%w: line %d has %s, codes file has %s",
					ErrKeyMismatch, i+1, code.Key(), ex.Primary.Key())
			}
			log.Warn().
				Int("line", i+1).
				Str("skeleton", code.Key()).
				Str("codes", ex.Primary.Key()).
				Msg("minimal key mismatch, skeleton line kept")
			continue
		}

		m.substitute(skeleton, i, code, ex.Primary, &report)
		report.Primaries++

		if ex.Follow == nil || i+1 >= len(skeleton.Lines) {
			continue
		}
		followCode, ok := dvw.ParseCode(skeleton.Lines[i+1])
		if !ok || !m.profile.follows(followCode.Skill) {
			continue
		}
		if followCode.Key() != ex.Follow.Key() {
			report.Mismatches++
			if m.opts.Strict {
				return report, fmt.Errorf("%w: line %d has %s, codes file has %s",
					ErrKeyMismatch, i+2, followCode.Key(), ex.Follow.Key())
			}
			log.Warn().
				Int("line", i+2).
				Str("skeleton", followCode.Key()).
				Str("codes", ex.Follow.Key()).
				Msg("minimal key mismatch on follow, skeleton line kept")
			continue
		}
		m.substitute(skeleton, i+1, followCode, *ex.Follow, &report)
		report.Follows++
		i++
	}

	report.Leftover = len(exchanges) - next
	if report.Leftover > 0 {
		log.Warn().
			Int("leftover", report.Leftover).
			Msg("codes file has exchanges the skeleton never consumed")
	}
	return report, nil
}

func (m *Merger) substitute(f *dvw.File, i int, old, verbose dvw.Code, report *Report) {
	oldLine := f.Lines[i]
	newLine := verbose.Token + oldLine[len(old.Token):]
	f.Lines[i] = newLine
	report.Changes = append(report.Changes, Change{Line: i + 1, Old: oldLine, New: newLine})
	log.Debug().
		Int("line", i+1).
		Str("old", oldLine).
		Str("new", newLine).
		Msg("substituted code")
}
