package merge

import (
	"testing"

	"github.com/volleytech/volley-dvw-tools/internal/dvw"
	"github.com/volleytech/volley-dvw-tools/internal/testutil/testlog"
)

func scoutFile(lines ...string) *dvw.File {
	all := append([]string{"[3SCOUT]"}, lines...)
	return &dvw.File{Path: "codes.dvw", Lines: all}
}

func mustProfile(t *testing.T, name string) Profile {
	t.Helper()
	p, ok := BuiltinProfile(name)
	if !ok {
		t.Fatalf("missing builtin profile %q", name)
	}
	return p
}

func TestExtractServePairs(t *testing.T) {
	testlog.Start(t)
	f := scoutFile(
		"*P01>LUp",
		"a13ST-~~~65B;;;;0563;",
		"*17RT+~~~65BM3;;;;;;;",
		"a13SQ#~~~12C;;;;0570;", // ace, no reception
		"*09SH-~~~88A;;;;0581;",
		"a05RH+~~~88AF2;;;;;;;",
	)
	exchanges, orphans := Extract(f, mustProfile(t, "serve"))
	if orphans != 0 {
		t.Fatalf("unexpected orphans: %d", orphans)
	}
	if len(exchanges) != 3 {
		t.Fatalf("unexpected exchange count: %d", len(exchanges))
	}
	if exchanges[0].Primary.Token != "a13ST-~~~65B" {
		t.Fatalf("unexpected first primary: %q", exchanges[0].Primary.Token)
	}
	if exchanges[0].Follow == nil || exchanges[0].Follow.Token != "*17RT+~~~65BM3" {
		t.Fatalf("unexpected first follow: %+v", exchanges[0].Follow)
	}
	if exchanges[1].Follow != nil {
		t.Fatalf("ace should have no follow: %+v", exchanges[1].Follow)
	}
	if exchanges[2].Follow == nil || exchanges[2].Follow.Token != "a05RH+~~~88AF2" {
		t.Fatalf("unexpected third follow: %+v", exchanges[2].Follow)
	}
}

func TestExtractOrphanFollows(t *testing.T) {
	testlog.Start(t)
	f := scoutFile(
		"*17RT+~~~65BM3;;;;;;;", // reception before any serve
		"a13ST-~~~65B;;;;0563;",
		"*17RT+~~~65BM3;;;;;;;",
		"*06RH-~~~22B;;;;;;;", // exchange already closed
	)
	exchanges, orphans := Extract(f, mustProfile(t, "serve"))
	if orphans != 2 {
		t.Fatalf("unexpected orphans: %d", orphans)
	}
	if len(exchanges) != 1 {
		t.Fatalf("unexpected exchange count: %d", len(exchanges))
	}
}

func TestExtractSkipsHeaderRows(t *testing.T) {
	testlog.Start(t)
	// The roster row matches the code pattern but sits before [3SCOUT].
	f := &dvw.File{Path: "codes.dvw", Lines: []string{
		"[3PLAYERS-V]",
		"a13Smith;;;",
		"[3SCOUT]",
		"a13ST-~~~65B;;;;0563;",
	}}
	exchanges, orphans := Extract(f, mustProfile(t, "serve"))
	if orphans != 0 {
		t.Fatalf("unexpected orphans: %d", orphans)
	}
	if len(exchanges) != 1 {
		t.Fatalf("unexpected exchange count: %d", len(exchanges))
	}
	if exchanges[0].Primary.Token != "a13ST-~~~65B" {
		t.Fatalf("unexpected primary: %q", exchanges[0].Primary.Token)
	}
}

func TestExtractAttackProfile(t *testing.T) {
	testlog.Start(t)
	f := scoutFile(
		"*10AH#X5~47A;;;;1201;",
		"a08DH+~~~47A;;;;;;;",
		"a11AH-V5~12B;;;;1210;",
		"*03BH=~~~12B;;;;;;;",
	)
	exchanges, orphans := Extract(f, mustProfile(t, "attack"))
	if orphans != 0 {
		t.Fatalf("unexpected orphans: %d", orphans)
	}
	if len(exchanges) != 2 {
		t.Fatalf("unexpected exchange count: %d", len(exchanges))
	}
	if exchanges[0].Follow == nil || exchanges[0].Follow.Skill != dvw.SkillDig {
		t.Fatalf("expected a dig follow: %+v", exchanges[0].Follow)
	}
	if exchanges[1].Follow == nil || exchanges[1].Follow.Skill != dvw.SkillBlock {
		t.Fatalf("expected a block follow: %+v", exchanges[1].Follow)
	}
}
