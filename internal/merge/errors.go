package merge

import "errors"

var (
	ErrUnknownProfile = errors.New("merge: unknown profile")
	ErrBadProfile     = errors.New("merge: invalid profile")
	ErrNoExchanges    = errors.New("merge: no exchanges in codes file")
	ErrKeyMismatch    = errors.New("merge: minimal key mismatch")
	ErrCodesExhausted = errors.New("merge: skeleton has more codes than supplied")
)
