package dvw

import "regexp"

// Skill letters as they appear in scout codes.
const (
	SkillServe     byte = 'S'
	SkillReception byte = 'R'
	SkillAttack    byte = 'A'
	SkillBlock     byte = 'B'
	SkillDig       byte = 'D'
	SkillSet       byte = 'E'
	SkillFreeball  byte = 'F'
)

var skillNames = map[byte]string{
	SkillServe:     "serve",
	SkillReception: "reception",
	SkillAttack:    "attack",
	SkillBlock:     "block",
	SkillDig:       "dig",
	SkillSet:       "set",
	SkillFreeball:  "freeball",
}

// KnownSkill reports whether b is one of the scout skill letters.
func KnownSkill(b byte) bool {
	_, ok := skillNames[b]
	return ok
}

// SkillName returns the human name for a skill letter, or "unknown".
func SkillName(b byte) string {
	if name, ok := skillNames[b]; ok {
		return name
	}
	return "unknown"
}

// A play code opens the line: team marker, two-digit player number, skill
// letter, then whatever the scout appended up to the first semicolon.
// Example: a13ST-~~~65B;;;;0563;... matches a13ST-~~~65B.
var codePattern = regexp.MustCompile(`^([*a][0-9]{2}[SRABDEF][^;]*)`)

// Code is one coded play token at the start of a scout line.
type Code struct {
	Team   byte   // '*' home, 'a' visitor
	Player string // two digits, zero padded
	Skill  byte
	Token  string // full token as scouted
}

// ParseCode extracts the play code opening the line, if any. Non-play lines
// (section headers, rotation markers, point markers) do not match.
func ParseCode(line string) (Code, bool) {
	m := codePattern.FindString(line)
	if m == "" {
		return Code{}, false
	}
	return Code{
		Team:   m[0],
		Player: m[1:3],
		Skill:  m[3],
		Token:  m,
	}, true
}

// Key returns the minimal key shared by corresponding codes across files:
// team marker, player number and skill letter, e.g. *07S.
func (c Code) Key() string {
	return c.Token[:4]
}
