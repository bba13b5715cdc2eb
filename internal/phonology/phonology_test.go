package phonology

import (
	"testing"

	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

func v(letter rune, shape types.VowelShape) Vowel { return Vowel{Letter: letter, Shape: shape} }

func TestResolveSingleVowel(t *testing.T) {
	got := Resolve([]Vowel{v('a', types.ShapeNone)}, false, false, true)
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestResolveTwoVowelsWithFinalConsonant(t *testing.T) {
	// "toan": o, a + final n -> second vowel (a).
	got := Resolve([]Vowel{v('o', types.ShapeNone), v('a', types.ShapeNone)}, true, false, true)
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestResolveMainOffglide(t *testing.T) {
	cases := []struct {
		name  string
		first Vowel
		last  Vowel
	}{
		{"ai", v('a', types.ShapeNone), v('i', types.ShapeNone)},
		{"ay", v('a', types.ShapeNone), v('y', types.ShapeNone)},
		{"oi", v('o', types.ShapeNone), v('i', types.ShapeNone)},
		{"ui", v('u', types.ShapeNone), v('i', types.ShapeNone)},
		{"oi-horn(ơi)", v('o', types.ShapeHorn), v('i', types.ShapeNone)},
		{"ui-horn(ưi)", v('u', types.ShapeHorn), v('i', types.ShapeNone)},
		{"ay-circumflex(ây)", v('a', types.ShapeCircumflex), v('y', types.ShapeNone)},
		{"oi-circumflex(ôi)", v('o', types.ShapeCircumflex), v('i', types.ShapeNone)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve([]Vowel{tc.first, tc.last}, false, false, true)
			if got != 0 {
				t.Fatalf("%s: got %d, want 0 (mark on first vowel)", tc.name, got)
			}
		})
	}
}

func TestResolveCompoundNucleus(t *testing.T) {
	cases := []struct {
		name  string
		first Vowel
		last  Vowel
	}{
		{"uo-horn(ươ)", v('u', types.ShapeHorn), v('o', types.ShapeHorn)},
		{"uo-circumflex(uô)", v('u', types.ShapeNone), v('o', types.ShapeCircumflex)},
		{"ie-circumflex(iê)", v('i', types.ShapeNone), v('e', types.ShapeCircumflex)},
		{"ye-circumflex(yê)", v('y', types.ShapeNone), v('e', types.ShapeCircumflex)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve([]Vowel{tc.first, tc.last}, false, false, true)
			if got != 1 {
				t.Fatalf("%s: got %d, want 1 (mark on second vowel)", tc.name, got)
			}
		})
	}
}

func TestResolveOpenGlideMainModernToneToggle(t *testing.T) {
	oa := []Vowel{v('o', types.ShapeNone), v('a', types.ShapeNone)}
	if got := Resolve(oa, false, false, true); got != 0 {
		t.Fatalf("modern_tone=true: got %d, want 0", got)
	}
	if got := Resolve(oa, false, false, false); got != 1 {
		t.Fatalf("modern_tone=false: got %d, want 1", got)
	}
}

func TestResolveQuaFamilyIgnoresModernTone(t *testing.T) {
	qua := []Vowel{v('u', types.ShapeNone), v('a', types.ShapeNone)}
	for _, modern := range []bool{true, false} {
		if got := Resolve(qua, false, true, modern); got != 1 {
			t.Fatalf("precededByQ, modernTone=%v: got %d, want 1", modern, got)
		}
	}
}

func TestResolveUaWithoutQ(t *testing.T) {
	ua := []Vowel{v('u', types.ShapeNone), v('a', types.ShapeNone)}
	if got := Resolve(ua, false, false, true); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestResolveUaHorn(t *testing.T) {
	uaHorn := []Vowel{v('u', types.ShapeHorn), v('a', types.ShapeNone)}
	if got := Resolve(uaHorn, false, false, true); got != 0 {
		t.Fatalf("got %d, want 0 (ưa keeps mark on ư)", got)
	}
}

func TestResolveThreeVowelsMiddle(t *testing.T) {
	got := Resolve([]Vowel{v('o', types.ShapeNone), v('a', types.ShapeNone), v('i', types.ShapeNone)}, false, false, true)
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}
