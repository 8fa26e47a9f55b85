package merge

import (
	"fmt"

	"github.com/volleytech/volley-dvw-tools/internal/dvw"
)

// Profile names the primary skill carrying the verbose codes and the follow
// skills that may trail it on the next line.
type Profile struct {
	Name    string
	Primary byte
	Follows []byte
}

// Built-in profiles. Serve/reception is the original pairing; attack covers
// the first-ball counterpart where the defense codes trail the attack.
var builtins = []Profile{
	{Name: "serve", Primary: dvw.SkillServe, Follows: []byte{dvw.SkillReception}},
	{Name: "attack", Primary: dvw.SkillAttack, Follows: []byte{dvw.SkillBlock, dvw.SkillDig}},
}

// BuiltinProfiles returns the built-in profiles in registration order.
func BuiltinProfiles() []Profile {
	out := make([]Profile, len(builtins))
	copy(out, builtins)
	return out
}

// BuiltinProfile resolves a built-in profile by name.
func BuiltinProfile(name string) (Profile, bool) {
	for _, p := range builtins {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Validate rejects profiles whose skills are not scout skill letters.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrBadProfile)
	}
	if !dvw.KnownSkill(p.Primary) {
		return fmt.Errorf("%w %q: unknown primary skill %q", ErrBadProfile, p.Name, string(p.Primary))
	}
	for _, s := range p.Follows {
		if !dvw.KnownSkill(s) {
			return fmt.Errorf("%w %q: unknown follow skill %q", ErrBadProfile, p.Name, string(s))
		}
		if s == p.Primary {
			return fmt.Errorf("%w %q: follow skill equals primary", ErrBadProfile, p.Name)
		}
	}
	return nil
}

func (p Profile) follows(skill byte) bool {
	for _, s := range p.Follows {
		if s == skill {
			return true
		}
	}
	return false
}
