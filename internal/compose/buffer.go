// Package compose holds the bounded composition buffer: the in-progress
// word the engine builds up one keystroke at a time. It is Component B —
// a fixed-capacity, allocation-free ring of cells with the operations the
// transformation rules need, plus the parallel raw-keystroke view that
// auto-correct consults at a word boundary.
package compose

import "github.com/nguyennhuanhle/gonhanh.org/internal/types"

// Capacity is the fixed composition-buffer size. Exceeding it is a silent
// no-op: the user notices by the absent composition and a space key
// clears it.
const Capacity = 32

// Cell is one keystroke contributing to the in-progress word.
type Cell struct {
	Key    rune             // lowercase letter/digit identity, see keytable.Letter
	Caps   bool             // true if shift/capslock made this keystroke uppercase
	Tone   types.VowelShape // none on every consonant
	Mark   types.Mark
	Stroke bool // true only when Key == 'd' and this cell renders as đ/Đ
}

// IsVowel reports whether the cell's key is one of the six vowel letters.
func (c Cell) IsVowel() bool {
	switch c.Key {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

// Buffer is the fixed-capacity composition buffer. The zero value is a
// valid, empty buffer.
type Buffer struct {
	cells [Capacity]Cell
	len   int
}

// Len returns the number of semantically present cells.
func (b *Buffer) Len() int { return b.len }

// Push appends cell, returning false (silent no-op) on overflow.
func (b *Buffer) Push(cell Cell) bool {
	if b.len >= Capacity {
		return false
	}
	b.cells[b.len] = cell
	b.len++
	return true
}

// Pop removes the last cell. Precondition: Len() > 0.
func (b *Buffer) Pop() {
	if b.len == 0 {
		return
	}
	b.len--
	b.cells[b.len] = Cell{}
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	for i := 0; i < b.len; i++ {
		b.cells[i] = Cell{}
	}
	b.len = 0
}

// Get returns the cell at i. Precondition: i < Len().
func (b *Buffer) Get(i int) Cell { return b.cells[i] }

// ReplaceAt overwrites the cell at i. Precondition: i < Len().
func (b *Buffer) ReplaceAt(i int, cell Cell) { b.cells[i] = cell }

// MarkIndex returns the index of the cell currently carrying a non-none
// mark, or -1 if none does. At most one cell may carry a mark at a time.
func (b *Buffer) MarkIndex() int {
	for i := 0; i < b.len; i++ {
		if b.cells[i].Mark != types.MarkNone {
			return i
		}
	}
	return -1
}

// ClearMark removes any existing mark, returning the index it was at
// (or -1 if there was none).
func (b *Buffer) ClearMark() int {
	i := b.MarkIndex()
	if i >= 0 {
		b.cells[i].Mark = types.MarkNone
	}
	return i
}

// VowelIndices returns the indices of every vowel cell, in order.
func (b *Buffer) VowelIndices() []int {
	var out []int
	for i := 0; i < b.len; i++ {
		if b.cells[i].IsVowel() {
			out = append(out, i)
		}
	}
	return out
}

// HasFinalConsonant reports whether the last cell is a consonant (i.e.
// there is a coda after the vowel run), the signal the phonology engine
// needs for its "two vowels + final consonant" rule.
func (b *Buffer) HasFinalConsonant() bool {
	if b.len == 0 {
		return false
	}
	last := b.cells[b.len-1]
	return !last.IsVowel()
}

// RawView mirrors the letters typed so far, before any Vietnamese
// transformation, for auto-correct's word-boundary lookup.
// It tracks raw key identity and caps only; it never carries tone/mark.
type RawView struct {
	letters [Capacity]rune
	caps    [Capacity]bool
	len     int
}

// Push appends a raw keystroke, silently truncating past Capacity like
// the composition buffer it shadows.
func (r *RawView) Push(key rune, caps bool) bool {
	if r.len >= Capacity {
		return false
	}
	r.letters[r.len] = key
	r.caps[r.len] = caps
	r.len++
	return true
}

// Pop removes the last raw keystroke, mirroring Buffer.Pop.
func (r *RawView) Pop() {
	if r.len == 0 {
		return
	}
	r.len--
}

// Clear empties the raw view.
func (r *RawView) Clear() { r.len = 0 }

// Len returns the number of raw keystrokes recorded.
func (r *RawView) Len() int { return r.len }

// Word renders the raw keystrokes as typed, case applied, for dictionary
// lookup and case-pattern detection.
func (r *RawView) Word() string {
	out := make([]rune, r.len)
	for i := 0; i < r.len; i++ {
		ch := r.letters[i]
		if r.caps[i] && ch >= 'a' && ch <= 'z' {
			ch = ch - 'a' + 'A'
		}
		out[i] = ch
	}
	return string(out)
}
