// Package types holds the small stable enumerations shared across the
// Vietnamese IME core: methods, marks, vowel shapes, actions and
// auto-correct modes. Numeric values are chosen to stay stable across an
// FFI boundary so a host binding can pass/store them as plain integers.
package types

// Method selects the keying convention used to interpret letter/digit keys.
type Method uint8

const (
	MethodTelex Method = iota
	MethodVNI
)

func (m Method) String() string {
	switch m {
	case MethodTelex:
		return "telex"
	case MethodVNI:
		return "vni"
	default:
		return "unknown"
	}
}

// VowelShape is the vowel-base alteration carried by a composition cell:
// circumflex (â/ê/ô), horn (ơ/ư) or breve (ă).
type VowelShape uint8

const (
	ShapeNone VowelShape = iota
	ShapeCircumflex
	ShapeHorn
	ShapeBreve
)

// Mark is one of the five Vietnamese tones, or none.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkSac          // sắc, acute
	MarkHuyen        // huyền, grave
	MarkHoi          // hỏi, hook above
	MarkNga          // ngã, tilde
	MarkNang         // nặng, dot below
)

// Action tells the host what to do with the edit result.
type Action uint8

const (
	ActionNone Action = iota
	ActionSend
	ActionRestore
)

// AutocorrectMode selects which built-in correction dictionaries are
// consulted at word boundaries.
type AutocorrectMode uint8

const (
	AutocorrectOff AutocorrectMode = iota
	AutocorrectVietnamese
	AutocorrectEnglish
	AutocorrectBoth
)

func (m AutocorrectMode) String() string {
	switch m {
	case AutocorrectOff:
		return "off"
	case AutocorrectVietnamese:
		return "vi"
	case AutocorrectEnglish:
		return "en"
	case AutocorrectBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Enabled reports whether any dictionary should be consulted.
func (m AutocorrectMode) Enabled() bool {
	return m != AutocorrectOff
}

// TransformKind names the most recent user-visible transformation, used by
// revert-on-repeat to know what to undo.
type TransformKind uint8

const (
	TransformNone TransformKind = iota
	TransformMark
	TransformToneShape
	TransformStroke
)
