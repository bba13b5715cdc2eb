package dispatcher

import (
	"testing"

	"github.com/nguyennhuanhle/gonhanh.org/internal/keytable"
	"github.com/nguyennhuanhle/gonhanh.org/internal/rebuild"
	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

// typeLetters feeds a lowercase ASCII string through the engine one
// keystroke at a time and returns the rendered text after every step.
func typeLetters(e *Engine, s string) (final string, last rebuild.Result) {
	var out []rune
	for _, r := range s {
		code := keytable.Keycode(r - 'a' + 'A')
		res := e.ProcessKey(code, false, false, false)
		last = res
		n := len(out) - res.BackspaceCount
		if n < 0 {
			n = 0
		}
		out = out[:n]
		out = append(out, res.Chars...)
	}
	return string(out), last
}

func newEngine(method types.Method, modernTone bool) *Engine {
	return New(Config{Method: method, Enabled: true, ModernTone: modernTone, AutocorrectMode: types.AutocorrectOff})
}

func TestTelexToanSProducesToan(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	final, _ := typeLetters(e, "toans")
	if final != "toán" {
		t.Fatalf("got %q, want %q", final, "toán")
	}
}

func TestTelexToanSSRevertsToToans(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	final, _ := typeLetters(e, "toanss")
	if final != "toans" {
		t.Fatalf("got %q, want %q", final, "toans")
	}
}

func TestTelexDoubleDStrokesImmediately(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	final, _ := typeLetters(e, "dd")
	if final != "đ" {
		t.Fatalf("got %q, want %q", final, "đ")
	}
}

func TestVNIDelayedStroke(t *testing.T) {
	e := newEngine(types.MethodVNI, true)
	final, _ := typeLetters(e, "dung")
	res := e.ProcessKey(keytable.Keycode('9'), false, false, false)
	n := len([]rune(final)) - res.BackspaceCount
	if n < 0 {
		n = 0
	}
	final = string([]rune(final)[:n]) + string(res.Chars)
	if final != "đung" {
		t.Fatalf("got %q, want %q", final, "đung")
	}
}

func TestTelexHornCompound(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	final, _ := typeLetters(e, "thuowng")
	if final != "thương" {
		t.Fatalf("got %q, want %q", final, "thương")
	}
}

func TestTelexModernToneOnOA(t *testing.T) {
	modern := newEngine(types.MethodTelex, true)
	gotModern, _ := typeLetters(modern, "hoaf")
	if gotModern != "hòa" {
		t.Fatalf("modern_tone=true: got %q, want %q", gotModern, "hòa")
	}

	traditional := newEngine(types.MethodTelex, false)
	gotTraditional, _ := typeLetters(traditional, "hoaf")
	if gotTraditional != "hoà" {
		t.Fatalf("modern_tone=false: got %q, want %q", gotTraditional, "hoà")
	}
}

func TestOverflowStopsAtCapacity(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	for i := 0; i < 40; i++ {
		e.ProcessKey(keytable.Keycode('B'), false, false, false)
	}
	if e.buf.Len() != 32 {
		t.Fatalf("buffer len = %d, want 32", e.buf.Len())
	}
	e.ProcessKey(keytable.KeySpace, false, false, false)
	if e.buf.Len() != 0 {
		t.Fatalf("buffer len after space = %d, want 0", e.buf.Len())
	}
}

func TestDisabledEngineNeverComposes(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	e.SetEnabled(false)
	res := e.ProcessKey(keytable.Keycode('A'), false, false, false)
	if res.Action() != types.ActionNone || e.buf.Len() != 0 {
		t.Fatalf("disabled engine produced action=%v len=%d", res.Action(), e.buf.Len())
	}
}

func TestBackspacePopsOneCell(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	typeLetters(e, "xin")
	e.ProcessKey(keytable.KeyBackspace, false, false, false)
	if e.buf.Len() != 2 {
		t.Fatalf("buffer len = %d, want 2", e.buf.Len())
	}
}

func TestRemoveDiacriticsIdempotent(t *testing.T) {
	e := newEngine(types.MethodTelex, true)
	typeLetters(e, "toans")
	e.ProcessKey(keytable.Keycode('Z'), false, false, false)
	onceLen := e.buf.Len()
	onceMark := e.buf.MarkIndex()
	e.ProcessKey(keytable.Keycode('Z'), false, false, false)
	if e.buf.Len() != onceLen+1 {
		t.Fatalf("second remove-diacritics call should append literal z, len=%d want=%d", e.buf.Len(), onceLen+1)
	}
	if onceMark != -1 {
		t.Fatalf("mark should be cleared after first remove-diacritics, got index %d", onceMark)
	}
}
