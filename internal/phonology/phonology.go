// Package phonology implements the tone-mark placement rules: given the
// vowel run currently in the composition buffer, it decides which vowel
// carries the tone mark. This is Component C — pure, stateless, and
// independent of which method (Telex/VNI) produced the keystrokes.
package phonology

import "github.com/nguyennhuanhle/gonhanh.org/internal/types"

// Vowel is the minimal description of one vowel cell the engine needs:
// its base letter and any vowel-shape already applied to it (tone-shape
// rules run before tone-mark rules, so shapes are already settled by the
// time Resolve is called).
type Vowel struct {
	Letter rune
	Shape  types.VowelShape
}

// Resolve returns the index, within vowels, of the vowel that should
// carry the tone mark. vowels must be non-empty. hasFinal reports
// whether a consonant follows the vowel run (a coda). precededByQ
// reports whether the vowel run is immediately preceded by a 'q'
// consonant (the qu- digraph), which changes how a leading 'u' behaves.
// modernTone selects modern vs. traditional placement for the oa/oe/uy
// open-syllable ambiguity (see the doc comment on openGlideMainTarget).
func Resolve(vowels []Vowel, hasFinal, precededByQ, modernTone bool) int {
	switch len(vowels) {
	case 0:
		return -1
	case 1:
		return 0
	case 2:
		return resolveTwo(vowels[0], vowels[1], hasFinal, precededByQ, modernTone)
	default:
		// Three (or, defensively, more) vowels: the middle one.
		return len(vowels) / 2
	}
}

func resolveTwo(first, second Vowel, hasFinal, precededByQ, modernTone bool) int {
	if hasFinal {
		return 1
	}

	if isOpenGlideMain(first, second, precededByQ) {
		return openGlideMainTarget(first, second, precededByQ, modernTone)
	}
	if isMainOffglide(first, second) {
		return 0
	}
	if isCompoundNucleus(first, second) {
		return 1
	}
	// ưa with nothing following: mark stays on the ư.
	if first.Letter == 'u' && first.Shape == types.ShapeHorn && second.Letter == 'a' {
		return 0
	}
	// ua without a preceding q: mark on the u.
	if first.Letter == 'u' && first.Shape == types.ShapeNone && second.Letter == 'a' && !precededByQ {
		return 0
	}
	// Fallback for any open two-vowel combination not enumerated above:
	// Vietnamese orthography overwhelmingly places the mark on the second
	// vowel of an unclassified open pair.
	return 1
}

// isOpenGlideMain matches the medial-glide-plus-main-vowel shapes: oa,
// oe, uy, and the qua/que/qui/quy family where the leading u is part of
// the qu- digraph rather than a true diphthong nucleus.
func isOpenGlideMain(first, second Vowel, precededByQ bool) bool {
	if first.Shape != types.ShapeNone || second.Shape != types.ShapeNone {
		return false
	}
	switch {
	case first.Letter == 'o' && (second.Letter == 'a' || second.Letter == 'e'):
		return true
	case first.Letter == 'u' && second.Letter == 'y':
		return true
	case precededByQ && first.Letter == 'u' && (second.Letter == 'a' || second.Letter == 'e' || second.Letter == 'i'):
		return true
	default:
		return false
	}
}

// openGlideMainTarget resolves the modern-vs-traditional ambiguity for
// the oa/oe/uy bucket only; the qua/que/qui/quy family is unaffected by
// modernTone and always takes the main vowel (index 1), since there the
// leading u is a glide consonant, not a tone-bearing nucleus member.
//
// modernTone=true places the mark on the first vowel written (index 0);
// modernTone=false places it on the second (index 1). For "hoa" + huyền
// this yields "hòa" (mark over the o, the first vowel) with
// modern_tone=true and "hoà" (mark over the a, the second vowel) with
// modern_tone=false.
func openGlideMainTarget(first, second Vowel, precededByQ, modernTone bool) int {
	if precededByQ && first.Letter == 'u' {
		// qua/que/qui/quy: always the main vowel, unaffected by modernTone.
		return 1
	}
	if modernTone {
		return 0
	}
	return 1
}

// isMainOffglide matches the main-vowel-plus-offglide shapes: ai, ao,
// au, ay, oi, ui, ơi, ưi, ây, ôi, ei. The mark always falls on the main
// (first) vowel.
func isMainOffglide(first, second Vowel) bool {
	if second.Letter != 'i' && second.Letter != 'y' && second.Letter != 'o' && second.Letter != 'u' {
		return false
	}
	switch {
	case first.Letter == 'a' && first.Shape == types.ShapeNone && (second.Letter == 'i' || second.Letter == 'o' || second.Letter == 'u' || second.Letter == 'y'):
		return true
	case first.Letter == 'a' && first.Shape == types.ShapeCircumflex && second.Letter == 'y': // ây
		return true
	case first.Letter == 'o' && first.Shape == types.ShapeNone && (second.Letter == 'i'):
		return true
	case first.Letter == 'o' && first.Shape == types.ShapeCircumflex && second.Letter == 'i': // ôi
		return true
	case first.Letter == 'o' && first.Shape == types.ShapeHorn && second.Letter == 'i': // ơi
		return true
	case first.Letter == 'u' && first.Shape == types.ShapeNone && second.Letter == 'i': // ui
		return true
	case first.Letter == 'u' && first.Shape == types.ShapeHorn && second.Letter == 'i': // ưi
		return true
	case first.Letter == 'e' && first.Shape == types.ShapeNone && second.Letter == 'i': // ei
		return true
	default:
		return false
	}
}

// isCompoundNucleus matches the three compound-nucleus digraphs ươ, uô,
// iê/yê, whose mark always falls on the second member.
func isCompoundNucleus(first, second Vowel) bool {
	switch {
	case first.Letter == 'u' && first.Shape == types.ShapeHorn && second.Letter == 'o' && second.Shape == types.ShapeHorn:
		return true // ươ
	case first.Letter == 'u' && first.Shape == types.ShapeNone && second.Letter == 'o' && second.Shape == types.ShapeCircumflex:
		return true // uô
	case (first.Letter == 'i' || first.Letter == 'y') && first.Shape == types.ShapeNone && second.Letter == 'e' && second.Shape == types.ShapeCircumflex:
		return true // iê / yê
	default:
		return false
	}
}
