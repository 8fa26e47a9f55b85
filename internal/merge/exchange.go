package merge

import (
	"github.com/rs/zerolog/log"

	"github.com/volleytech/volley-dvw-tools/internal/dvw"
)

// Exchange pairs a verbose primary code with its optional follow code.
// Follow is nil when the rally ended on the primary touch (ace, error).
type Exchange struct {
	Primary dvw.Code
	Follow  *dvw.Code
}

// Extract scans the codes file for exchanges in scout order, starting after
// the [3SCOUT] header when one is present so header rows that happen to
// match the code pattern never become exchanges. A follow code arriving
// before any primary, or after its exchange already closed, is an orphan:
// counted and logged, never merged.
func Extract(f *dvw.File, p Profile) ([]Exchange, int) {
	start := 0
	if idx, ok := f.ScoutStart(); ok {
		start = idx
	}
	var (
		exchanges []Exchange
		orphans   int
	)
	for i := start; i < len(f.Lines); i++ {
		code, ok := dvw.ParseCode(f.Lines[i])
		if !ok {
			continue
		}
		switch {
		case code.Skill == p.Primary:
			exchanges = append(exchanges, Exchange{Primary: code})
		case p.follows(code.Skill):
			last := len(exchanges) - 1
			if last < 0 || exchanges[last].Follow != nil {
				orphans++
				log.Warn().
					Int("line", i+1).
					Str("code", code.Token).
					Msg("follow code without an open exchange")
				continue
			}
			follow := code
			exchanges[last].Follow = &follow
		}
	}
	return exchanges, orphans
}
