// Package rebuild renders composition-buffer cells into the NFC-precomposed
// Unicode text the host should display, and computes the backspace/insert
// edit the host applies to get there. This is Component D.
package rebuild

import (
	"unicode"

	"github.com/nguyennhuanhle/gonhanh.org/internal/compose"
	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

// base maps (letter, vowel shape) to the unmarked base vowel.
var base = map[rune]map[types.VowelShape]rune{
	'a': {types.ShapeNone: 'a', types.ShapeCircumflex: 'â', types.ShapeBreve: 'ă'},
	'e': {types.ShapeNone: 'e', types.ShapeCircumflex: 'ê'},
	'o': {types.ShapeNone: 'o', types.ShapeCircumflex: 'ô', types.ShapeHorn: 'ơ'},
	'u': {types.ShapeNone: 'u', types.ShapeHorn: 'ư'},
	'i': {types.ShapeNone: 'i'},
	'y': {types.ShapeNone: 'y'},
}

// precomposed maps a base vowel and a tone mark to the single NFC code
// point representing both. Row order follows types.Mark's iota order:
// none, sắc, huyền, hỏi, ngã, nặng.
var precomposed = map[rune][6]rune{
	'a': {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	'ă': {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'â': {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'e': {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'i': {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'o': {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'ô': {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'u': {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'ư': {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'y': {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// Render produces the single rune a composition cell displays as.
func Render(c compose.Cell) rune {
	var r rune
	switch {
	case c.Stroke && c.Key == 'd':
		r = 'đ'
	case c.IsVowel():
		b, ok := base[c.Key][c.Tone]
		if !ok {
			b = c.Key
		}
		row, ok := precomposed[b]
		if !ok {
			r = b
		} else {
			r = row[c.Mark]
		}
	default:
		r = c.Key
	}
	if c.Caps {
		r = unicode.ToUpper(r)
	}
	return r
}

// Result is the edit the host applies: delete BackspaceCount displayed
// characters, then insert Chars.
type Result struct {
	BackspaceCount int
	Chars          []rune
}

// Action reports the action this result implies.
func (r Result) Action() types.Action {
	if r.BackspaceCount == 0 && len(r.Chars) == 0 {
		return types.ActionNone
	}
	return types.ActionSend
}

// Rebuild renders every cell in buf from index from to the end, and
// computes the backspace count needed to get there from a display that
// currently shows preMutationLen rendered cells.
//
// A naive formula — backspace_count = len − from, both read after the
// mutation that triggered this rebuild — produces the wrong count
// whenever the mutation changed the buffer's length: a plain append,
// where nothing needs deleting, or a revert, which restores the prior
// cells and then appends the literal key. The correct count only falls out if
// backspace_count is computed against the buffer length as it stood at
// the *start* of processing this key, before any rule mutated it.
// preMutationLen is that captured length.
func Rebuild(buf *compose.Buffer, preMutationLen, from int) Result {
	newLen := buf.Len()
	if from == newLen && from == preMutationLen {
		return Result{}
	}
	chars := make([]rune, 0, newLen-from)
	for i := from; i < newLen; i++ {
		chars = append(chars, Render(buf.Get(i)))
	}
	return Result{
		BackspaceCount: preMutationLen - from,
		Chars:          chars,
	}
}
