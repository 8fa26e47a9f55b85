package dvw

import "errors"

var (
	ErrNotScoutFile   = errors.New("dvw: not a scout file")
	ErrNoScoutSection = errors.New("dvw: no [3SCOUT] section")
)
