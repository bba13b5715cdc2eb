package autocorrect

import (
	"testing"

	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

func TestApplyEnglishCorrectionPreservesTitleCase(t *testing.T) {
	c := New()
	res := c.Apply(types.AutocorrectEnglish, "Teh", 3, ' ')
	if string(res.Chars) != "The " {
		t.Fatalf("chars = %q, want %q", string(res.Chars), "The ")
	}
	if res.BackspaceCount != 3 {
		t.Fatalf("backspace = %d, want 3", res.BackspaceCount)
	}
}

func TestApplyNoMatchReturnsZeroResult(t *testing.T) {
	c := New()
	res := c.Apply(types.AutocorrectEnglish, "hello", 5, ' ')
	if res.Action() != types.ActionNone {
		t.Fatalf("action = %v, want none", res.Action())
	}
}

func TestApplyOffModeNeverCorrects(t *testing.T) {
	c := New()
	res := c.Apply(types.AutocorrectOff, "teh", 3, ' ')
	if res.Action() != types.ActionNone {
		t.Fatalf("action = %v, want none", res.Action())
	}
}

func TestShortcutTakesPriorityOverBuiltin(t *testing.T) {
	c := New()
	c.SetShortcuts(fakeShortcuts{"teh": "TEH-OVERRIDE"})
	res := c.Apply(types.AutocorrectEnglish, "teh", 3, ' ')
	if string(res.Chars) != "teh-override " {
		t.Fatalf("chars = %q, want %q", string(res.Chars), "teh-override ")
	}
}

func TestClassifyCaseAllUpper(t *testing.T) {
	res := applyCasePattern("TEH", "the")
	if res != "THE" {
		t.Fatalf("got %q, want %q", res, "THE")
	}
}

type fakeShortcuts map[string]string

func (f fakeShortcuts) Lookup(word string) (string, bool) {
	v, ok := f[word]
	return v, ok
}
