// Package keytable maps abstract keycodes to base letters and classifies
// them, and enumerates the per-method modifier/mark/stroke/remove keys.
// It is Component A of the engine: the host translates its native key
// events into this abstract alphabet before calling the dispatcher, so the
// rest of the engine never depends on any OS key constant.
package keytable

import "github.com/nguyennhuanhle/gonhanh.org/internal/types"

// Keycode is the abstract, virtual-key-style identifier the host sends in.
// Letters A-Z use their ASCII-uppercase code; digits '0'-'9' use ASCII.
// Break keys are classified by Class, not by a reserved code range.
type Keycode uint16

const (
	KeyBackspace Keycode = 0x08
	KeyTab       Keycode = 0x09
	KeyEnter     Keycode = 0x0D
	KeyEsc       Keycode = 0x1B
	KeySpace     Keycode = 0x20

	// Arrow/navigation keys live outside the printable ASCII range so they
	// never collide with a letter, digit or punctuation keycode.
	KeyArrowLeft  Keycode = 0xE000
	KeyArrowRight Keycode = 0xE001
	KeyArrowUp    Keycode = 0xE002
	KeyArrowDown  Keycode = 0xE003
	KeyDelete     Keycode = 0xE004
	KeyHome       Keycode = 0xE005
	KeyEnd        Keycode = 0xE006
	KeyPageUp     Keycode = 0xE007
	KeyPageDown   Keycode = 0xE008
)

// Letter is the normalized, lowercase letter or digit identity a Keycode
// maps to (the stable letter-family identifier, independent of method).
type Letter rune

// FromKeycode lowercases a letter/digit keycode into its Letter identity.
// ok is false for keycodes outside A-Z/0-9 (the caller should classify
// those through Classify instead).
func FromKeycode(k Keycode) (Letter, bool) {
	switch {
	case k >= 'A' && k <= 'Z':
		return Letter(rune(k) - 'A' + 'a'), true
	case k >= '0' && k <= '9':
		return Letter(rune(k)), true
	default:
		return 0, false
	}
}

var vowelSet = map[Letter]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true}

// IsVowel reports whether l is one of the six Latin vowel letters.
func IsVowel(l Letter) bool { return vowelSet[l] }

// IsConsonant reports whether l is a Latin letter that is not a vowel.
func IsConsonant(l Letter) bool { return l >= 'a' && l <= 'z' && !vowelSet[l] }

// IsDigit reports whether l is one of '0'-'9'.
func IsDigit(l Letter) bool { return l >= '0' && l <= '9' }

// Class classifies a raw keycode for the top-level state machine.
type Class uint8

const (
	ClassLetterOrDigit Class = iota
	ClassBreak
	ClassBackspace
	ClassModifierOnly // Ctrl/Alt/Cmd-chord marker; host should not also send this as text
)

// breakPunctuation is the union of break-key punctuation standardised
// across Telex/VNI community norms: every symbol that ends composition.
var breakPunctuation = map[Keycode]bool{
	',': true, '.': true, ';': true, ':': true, '\'': true, '"': true,
	'!': true, '?': true, '(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true, '/': true, '\\': true, '-': true, '_': true,
	'+': true, '=': true, '<': true, '>': true, '@': true, '#': true,
	'$': true, '%': true, '^': true, '&': true, '*': true, '~': true, '`': true,
}

// Classify reports which top-level bucket a keycode falls into.
func Classify(k Keycode) Class {
	switch {
	case k == KeyBackspace || k == KeyDelete:
		return ClassBackspace
	case k == KeySpace || k == KeyTab || k == KeyEnter || k == KeyEsc ||
		k == KeyArrowLeft || k == KeyArrowRight || k == KeyArrowUp || k == KeyArrowDown ||
		k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown:
		return ClassBreak
	case breakPunctuation[k]:
		return ClassBreak
	case (k >= 'A' && k <= 'Z') || (k >= '0' && k <= '9'):
		return ClassLetterOrDigit
	default:
		// Invalid keycode (no mapping): always treated as a break key;
		// no unmapped keycode is passed through with the buffer kept.
		return ClassBreak
	}
}

// ModifierRule describes a shape-applying key: which letters it may target
// and the shape it applies (§4.E.3).
type ModifierRule struct {
	Key     Letter
	Shape   types.VowelShape
	Targets []Letter
}

// MarkRule maps a mark key to the tone it produces (§4.E.4).
type MarkRule struct {
	Key  Letter
	Mark types.Mark
}

// MethodTable is the full per-method data Component A enumerates: which
// keys are modifiers, which are marks, which trigger the đ-stroke, and
// which removes diacritics.
type MethodTable struct {
	Method      types.Method
	Modifiers   []ModifierRule
	Marks       []MarkRule
	StrokeKey   Letter // '\x00' for telex, which uses a doubled 'd' instead
	RemoveKey   Letter
	DoubledD    bool // true for Telex: typing 'd' after an unstroked 'd' strokes it
}

var telexTable = MethodTable{
	Method: types.MethodTelex,
	Modifiers: []ModifierRule{
		{Key: 'a', Shape: types.ShapeCircumflex, Targets: []Letter{'a'}},
		{Key: 'e', Shape: types.ShapeCircumflex, Targets: []Letter{'e'}},
		{Key: 'o', Shape: types.ShapeCircumflex, Targets: []Letter{'o'}},
		{Key: 'w', Shape: types.ShapeHorn, Targets: []Letter{'o', 'u'}},
		{Key: 'w', Shape: types.ShapeBreve, Targets: []Letter{'a'}},
	},
	Marks: []MarkRule{
		{Key: 's', Mark: types.MarkSac},
		{Key: 'f', Mark: types.MarkHuyen},
		{Key: 'r', Mark: types.MarkHoi},
		{Key: 'x', Mark: types.MarkNga},
		{Key: 'j', Mark: types.MarkNang},
	},
	RemoveKey: 'z',
	DoubledD:  true,
}

var vniTable = MethodTable{
	Method: types.MethodVNI,
	Modifiers: []ModifierRule{
		{Key: '6', Shape: types.ShapeCircumflex, Targets: []Letter{'a', 'e', 'o'}},
		{Key: '7', Shape: types.ShapeHorn, Targets: []Letter{'o', 'u'}},
		{Key: '8', Shape: types.ShapeBreve, Targets: []Letter{'a'}},
	},
	Marks: []MarkRule{
		{Key: '1', Mark: types.MarkSac},
		{Key: '2', Mark: types.MarkHuyen},
		{Key: '3', Mark: types.MarkHoi},
		{Key: '4', Mark: types.MarkNga},
		{Key: '5', Mark: types.MarkNang},
	},
	StrokeKey: '9',
	RemoveKey: '0',
}

// Table returns the key table for a method.
func Table(m types.Method) MethodTable {
	if m == types.MethodVNI {
		return vniTable
	}
	return telexTable
}

// ModifiersFor returns every modifier rule bound to key in method m.
func (t MethodTable) ModifiersFor(key Letter) []ModifierRule {
	var out []ModifierRule
	for _, rule := range t.Modifiers {
		if rule.Key == key {
			out = append(out, rule)
		}
	}
	return out
}

// MarkFor returns the tone a mark key produces, and whether key is one.
func (t MethodTable) MarkFor(key Letter) (types.Mark, bool) {
	for _, rule := range t.Marks {
		if rule.Key == key {
			return rule.Mark, true
		}
	}
	return types.MarkNone, false
}
