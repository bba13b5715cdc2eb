// Package rules implements the ordered transformation rules that turn one
// incoming letter/digit key into a composition-buffer edit: stroke
// (immediate and VNI-delayed), tone shape, tone mark, remove-diacritics,
// revert-on-repeat, and plain append. This is Component E. Each rule is a
// small function in the shape the design notes call for —
// try(state, key) → (edit, matched) — tried in strict priority order by
// Apply, the package's single entry point.
package rules

import (
	"github.com/nguyennhuanhle/gonhanh.org/internal/compose"
	"github.com/nguyennhuanhle/gonhanh.org/internal/keytable"
	"github.com/nguyennhuanhle/gonhanh.org/internal/phonology"
	"github.com/nguyennhuanhle/gonhanh.org/internal/rebuild"
	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

// AffectedCell records a cell's value before a transformation touched it,
// so revert-on-repeat can restore it exactly.
type AffectedCell struct {
	Index int
	Prior compose.Cell
}

// LastTransformation is the bookkeeping revert-on-repeat needs: what kind
// of edit happened, which key triggered it, and what to restore.
type LastTransformation struct {
	Kind       types.TransformKind
	TriggerKey keytable.Letter
	Affected   []AffectedCell
}

// Clear resets the record to "no transformation pending".
func (t *LastTransformation) Clear() {
	t.Kind = types.TransformNone
	t.TriggerKey = 0
	t.Affected = nil
}

// Input bundles everything a rule needs about the incoming keystroke.
type Input struct {
	Key        keytable.Letter
	Caps       bool
	Table      keytable.MethodTable
	ModernTone bool
}

// Apply tries every rule in priority order and returns the first match's
// edit. ok is false if no rule matched, meaning the caller should fall
// back to a plain append.
func Apply(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input) (rebuild.Result, bool) {
	preLen := buf.Len()
	type rule func(*compose.Buffer, *compose.RawView, *LastTransformation, Input, int) (rebuild.Result, bool)
	for _, r := range []rule{
		tryStrokeImmediate,
		tryStrokeDelayed,
		tryToneShape,
		tryToneMark,
		tryRemoveDiacritics,
		tryRevertOnRepeat,
	} {
		if res, ok := r(buf, raw, last, in, preLen); ok {
			return res, true
		}
	}
	return rebuild.Result{}, false
}

// Append pushes key as a fresh cell (rule 7, the fallback when no other
// rule matched) and renders the edit for it.
func Append(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input) rebuild.Result {
	preLen := buf.Len()
	idx := buf.Len()
	if !buf.Push(compose.Cell{Key: rune(in.Key), Caps: in.Caps}) {
		raw.Push(rune(in.Key), in.Caps)
		return rebuild.Result{}
	}
	raw.Push(rune(in.Key), in.Caps)
	last.Clear()
	return rebuild.Rebuild(buf, preLen, idx)
}

// tryStrokeImmediate: Telex "dd" or VNI "d" then "9" strokes the previous
// unstroked d in place (rule 1).
func tryStrokeImmediate(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int) (rebuild.Result, bool) {
	isTrigger := (in.Table.DoubledD && in.Key == 'd') || (in.Key == in.Table.StrokeKey && in.Table.StrokeKey != 0)
	if !isTrigger || buf.Len() == 0 {
		return rebuild.Result{}, false
	}
	idx := buf.Len() - 1
	prev := buf.Get(idx)
	if prev.Key != 'd' || prev.Stroke {
		return rebuild.Result{}, false
	}
	*last = LastTransformation{
		Kind:       types.TransformStroke,
		TriggerKey: in.Key,
		Affected:   []AffectedCell{{Index: idx, Prior: prev}},
	}
	buf.ReplaceAt(idx, compose.Cell{Key: 'd', Caps: prev.Caps, Stroke: true})
	raw.Push(rune(in.Key), in.Caps)
	return rebuild.Rebuild(buf, preLen, idx), true
}

// tryStrokeDelayed: VNI-only. Key '9' with no adjacent d scans for the
// first unstroked d anywhere in the buffer (rule 2).
func tryStrokeDelayed(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int) (rebuild.Result, bool) {
	if in.Table.StrokeKey == 0 || in.Key != in.Table.StrokeKey {
		return rebuild.Result{}, false
	}
	for i := 0; i < buf.Len(); i++ {
		cell := buf.Get(i)
		if cell.Key == 'd' && !cell.Stroke {
			*last = LastTransformation{
				Kind:       types.TransformStroke,
				TriggerKey: in.Key,
				Affected:   []AffectedCell{{Index: i, Prior: cell}},
			}
			buf.ReplaceAt(i, compose.Cell{Key: 'd', Caps: cell.Caps, Stroke: true})
			raw.Push(rune(in.Key), in.Caps)
			return rebuild.Rebuild(buf, preLen, i), true
		}
	}
	return rebuild.Result{}, false
}

// tryToneShape applies a circumflex/horn/breve modifier key (rule 3).
func tryToneShape(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int) (rebuild.Result, bool) {
	rulesForKey := in.Table.ModifiersFor(in.Key)
	if len(rulesForKey) == 0 {
		return rebuild.Result{}, false
	}

	if in.Table.Method == types.MethodTelex {
		return tryTelexDoubleLetter(buf, raw, last, in, preLen)
	}
	return tryVNIDigitShape(buf, raw, last, in, preLen, rulesForKey)
}

// tryTelexDoubleLetter handles aa/ee/oo (circumflex), ow/uw (horn) and aw
// (breve): the just-typed letter either duplicates the preceding vowel or
// (for w) follows an eligible bare vowel.
func tryTelexDoubleLetter(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int) (rebuild.Result, bool) {
	if buf.Len() == 0 {
		return rebuild.Result{}, false
	}
	idx := buf.Len() - 1
	prev := buf.Get(idx)

	var shape types.VowelShape
	switch in.Key {
	case 'a':
		if prev.Key != 'a' || prev.Tone != types.ShapeNone {
			return rebuild.Result{}, false
		}
		shape = types.ShapeCircumflex
	case 'e':
		if prev.Key != 'e' || prev.Tone != types.ShapeNone {
			return rebuild.Result{}, false
		}
		shape = types.ShapeCircumflex
	case 'o':
		if prev.Key != 'o' || prev.Tone != types.ShapeNone {
			return rebuild.Result{}, false
		}
		shape = types.ShapeCircumflex
	case 'w':
		switch prev.Key {
		case 'o', 'u':
			if prev.Tone != types.ShapeNone {
				return rebuild.Result{}, false
			}
			shape = types.ShapeHorn
		case 'a':
			if prev.Tone != types.ShapeNone {
				return rebuild.Result{}, false
			}
			shape = types.ShapeBreve
		default:
			return rebuild.Result{}, false
		}
	default:
		return rebuild.Result{}, false
	}

	prior := prev
	*last = LastTransformation{
		Kind:       types.TransformToneShape,
		TriggerKey: in.Key,
		Affected:   []AffectedCell{{Index: idx, Prior: prior}},
	}
	buf.ReplaceAt(idx, compose.Cell{Key: prev.Key, Caps: prev.Caps, Tone: shape, Mark: prev.Mark})
	from := applyCompoundPartner(buf, last, idx, shape)
	raw.Push(rune(in.Key), in.Caps)
	return rebuild.Rebuild(buf, preLen, from), true
}

// tryVNIDigitShape handles VNI's 6/7/8: find the rightmost unmodified
// vowel among the rule's targets.
func tryVNIDigitShape(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int, candidates []keytable.ModifierRule) (rebuild.Result, bool) {
	for i := buf.Len() - 1; i >= 0; i-- {
		cell := buf.Get(i)
		if !cell.IsVowel() || cell.Tone != types.ShapeNone {
			continue
		}
		for _, rule := range candidates {
			for _, target := range rule.Targets {
				if rune(target) == cell.Key {
					prior := cell
					*last = LastTransformation{
						Kind:       types.TransformToneShape,
						TriggerKey: in.Key,
						Affected:   []AffectedCell{{Index: i, Prior: prior}},
					}
					buf.ReplaceAt(i, compose.Cell{Key: cell.Key, Caps: cell.Caps, Tone: rule.Shape, Mark: cell.Mark})
					from := applyCompoundPartner(buf, last, i, rule.Shape)
					raw.Push(rune(in.Key), in.Caps)
					return rebuild.Rebuild(buf, preLen, from), true
				}
			}
		}
	}
	return rebuild.Result{}, false
}

// applyCompoundPartner extends a shape onto the orthographically linked
// neighbour: horn on "uo" makes both members horned (ươ); circumflex
// applied while a u precedes only ever lands on the o of "uô", which
// this function does not need to touch since the o is the one already
// being modified in that case. It exists for the u+o horn-pairing only.
// A partner it changes is added to last's affected cells so a revert
// restores it too; it returns the lowest index the edit touched.
func applyCompoundPartner(buf *compose.Buffer, last *LastTransformation, idx int, shape types.VowelShape) int {
	if shape != types.ShapeHorn {
		return idx
	}
	cell := buf.Get(idx)
	switch cell.Key {
	case 'o':
		if idx > 0 {
			left := buf.Get(idx - 1)
			if left.Key == 'u' && left.Tone == types.ShapeNone {
				last.Affected = append(last.Affected, AffectedCell{Index: idx - 1, Prior: left})
				buf.ReplaceAt(idx-1, compose.Cell{Key: 'u', Caps: left.Caps, Tone: types.ShapeHorn, Mark: left.Mark})
				return idx - 1
			}
		}
	case 'u':
		if idx+1 < buf.Len() {
			right := buf.Get(idx + 1)
			if right.Key == 'o' && right.Tone == types.ShapeNone {
				last.Affected = append(last.Affected, AffectedCell{Index: idx + 1, Prior: right})
				buf.ReplaceAt(idx+1, compose.Cell{Key: 'o', Caps: right.Caps, Tone: types.ShapeHorn, Mark: right.Mark})
			}
		}
	}
	return idx
}

// tryToneMark applies a tone-mark key (rule 4), consulting the phonology
// engine to choose which vowel carries the mark.
func tryToneMark(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int) (rebuild.Result, bool) {
	mark, ok := in.Table.MarkFor(in.Key)
	if !ok {
		return rebuild.Result{}, false
	}
	if last.Kind == types.TransformMark && last.TriggerKey == in.Key {
		// Repeating the key that placed the current mark is a revert,
		// left to tryRevertOnRepeat.
		return rebuild.Result{}, false
	}
	vowelIdx := buf.VowelIndices()
	if len(vowelIdx) == 0 {
		return rebuild.Result{}, false
	}

	vowels := make([]phonology.Vowel, len(vowelIdx))
	for i, vi := range vowelIdx {
		c := buf.Get(vi)
		vowels[i] = phonology.Vowel{Letter: c.Key, Shape: c.Tone}
	}
	precededByQ := vowelIdx[0] > 0 && buf.Get(vowelIdx[0]-1).Key == 'q'
	target := phonology.Resolve(vowels, buf.HasFinalConsonant(), precededByQ, in.ModernTone)
	if target < 0 {
		return rebuild.Result{}, false
	}
	targetIdx := vowelIdx[target]

	var affected []AffectedCell
	if existing := buf.MarkIndex(); existing >= 0 && existing != targetIdx {
		affected = append(affected, AffectedCell{Index: existing, Prior: buf.Get(existing)})
		c := buf.Get(existing)
		c.Mark = types.MarkNone
		buf.ReplaceAt(existing, c)
	}
	prior := buf.Get(targetIdx)
	affected = append(affected, AffectedCell{Index: targetIdx, Prior: prior})
	c := prior
	c.Mark = mark
	buf.ReplaceAt(targetIdx, c)

	*last = LastTransformation{Kind: types.TransformMark, TriggerKey: in.Key, Affected: affected}
	raw.Push(rune(in.Key), in.Caps)

	from := targetIdx
	for _, a := range affected {
		if a.Index < from {
			from = a.Index
		}
	}
	return rebuild.Rebuild(buf, preLen, from), true
}

// tryRemoveDiacritics strips every tone/mark/stroke in the buffer (rule
// 5). If nothing carries a diacritic, it declines and the key falls
// through to the remaining rules and then to a plain append, so Telex 'z'
// and VNI '0' alike end up as a literal cell.
func tryRemoveDiacritics(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int) (rebuild.Result, bool) {
	if in.Key != in.Table.RemoveKey {
		return rebuild.Result{}, false
	}
	first := -1
	any := false
	for i := 0; i < buf.Len(); i++ {
		c := buf.Get(i)
		if c.Tone != types.ShapeNone || c.Mark != types.MarkNone || c.Stroke {
			any = true
			if first < 0 {
				first = i
			}
			c.Tone = types.ShapeNone
			c.Mark = types.MarkNone
			c.Stroke = false
			buf.ReplaceAt(i, c)
		}
	}
	if !any {
		return rebuild.Result{}, false
	}
	last.Clear()
	raw.Push(rune(in.Key), in.Caps)
	return rebuild.Rebuild(buf, preLen, first), true
}

// tryRevertOnRepeat undoes the last transformation if key repeats its
// trigger, then appends the key literally (rule 6).
func tryRevertOnRepeat(buf *compose.Buffer, raw *compose.RawView, last *LastTransformation, in Input, preLen int) (rebuild.Result, bool) {
	if last.Kind == types.TransformNone || last.TriggerKey != in.Key {
		return rebuild.Result{}, false
	}
	from := buf.Len()
	for _, a := range last.Affected {
		buf.ReplaceAt(a.Index, a.Prior)
		if a.Index < from {
			from = a.Index
		}
	}
	buf.Push(compose.Cell{Key: rune(in.Key), Caps: in.Caps})
	last.Clear()
	raw.Push(rune(in.Key), in.Caps)
	return rebuild.Rebuild(buf, preLen, from), true
}
