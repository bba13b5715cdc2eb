// Package gonhanh is the host-facing surface of the Vietnamese input
// method engine (Component H): a small synchronous API a desktop IME
// framework, a terminal harness, or a C-ABI shim can call directly. It
// wraps internal/dispatcher.Engine with the exact operations and stable
// numeric enum encodings spec'd for the external interface.
package gonhanh

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nguyennhuanhle/gonhanh.org/internal/dispatcher"
	"github.com/nguyennhuanhle/gonhanh.org/internal/keytable"
	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

// Version is the engine's own release version, returned by GetVersion.
const Version = "1.0.0"

// Method mirrors the stable numeric method encoding (0=Telex, 1=VNI).
type Method = types.Method

const (
	MethodTelex = types.MethodTelex
	MethodVNI   = types.MethodVNI
)

// AutocorrectMode mirrors the stable numeric mode encoding.
type AutocorrectMode = types.AutocorrectMode

const (
	AutocorrectOff        = types.AutocorrectOff
	AutocorrectVietnamese = types.AutocorrectVietnamese
	AutocorrectEnglish    = types.AutocorrectEnglish
	AutocorrectBoth       = types.AutocorrectBoth
)

// Action mirrors the stable numeric action encoding.
type Action = types.Action

const (
	ActionNone    = types.ActionNone
	ActionSend    = types.ActionSend
	ActionRestore = types.ActionRestore
)

// EditResult is what the host applies after each process_key call:
// delete BackspaceCount displayed characters, then insert Chars[:ValidLen].
type EditResult struct {
	Action         Action
	BackspaceCount uint8
	Chars          []rune
	ValidLen       uint8
}

// Engine is a constructible instance of the IME core. The zero value is
// not usable; construct with New. The host owns the instance and must
// serialize calls into it itself — Engine performs no internal
// locking.
type Engine struct {
	core *dispatcher.Engine
}

// New constructs an Engine with sensible defaults (Telex, enabled,
// modern tone on, auto-correct off). Initialize is idempotent: calling
// New again simply yields a fresh instance.
func New() *Engine {
	return &Engine{core: dispatcher.New(dispatcher.Config{
		Method:          types.MethodTelex,
		Enabled:         true,
		ModernTone:      true,
		AutocorrectMode: types.AutocorrectOff,
	})}
}

// SetMethod changes the keying convention.
func (e *Engine) SetMethod(m Method) { e.core.SetMethod(m) }

// SetEnabled toggles the engine on/off.
func (e *Engine) SetEnabled(v bool) { e.core.SetEnabled(v) }

// SetModernTone toggles modern vs. traditional open-syllable tone placement.
func (e *Engine) SetModernTone(v bool) { e.core.SetModernTone(v) }

// SetAutocorrectMode changes which dictionaries word-boundary
// auto-correct consults. An out-of-range value is ignored.
func (e *Engine) SetAutocorrectMode(m AutocorrectMode) { e.core.SetAutocorrectMode(m) }

// GetAutocorrectMode returns the active auto-correct mode.
func (e *Engine) GetAutocorrectMode() AutocorrectMode { return e.core.Config().AutocorrectMode }

// IsAutocorrectEnabled reports whether any dictionary is being consulted.
func (e *Engine) IsAutocorrectEnabled() bool { return e.core.Config().AutocorrectMode.Enabled() }

// ProcessKey is the engine's hot-path operation. keycode is the abstract
// key identity (see internal/keytable); shift and caps report the
// physical modifier state; chordModifier must be true if the host
// detected a Ctrl/Alt/Cmd chord on this keystroke.
func (e *Engine) ProcessKey(keycode uint16, shift, caps, chordModifier bool) EditResult {
	res := e.core.ProcessKey(keytable.Keycode(keycode), shift, caps, chordModifier)
	chars := res.Chars
	if len(chars) > 64 {
		chars = chars[:64]
	}
	return EditResult{
		Action:         res.Action(),
		BackspaceCount: clampU8(res.BackspaceCount),
		Chars:          chars,
		ValidLen:       uint8(len(chars)),
	}
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// GetVersion returns the engine's own release version string.
func GetVersion() string { return Version }

// VerifyNFC reports whether s is already fully NFC-normalized, as every
// string this engine renders must be: no combining sequences are ever
// emitted. It exists for tests and host-side assertions, not the hot
// path itself.
func VerifyNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}

// VersionCompare does a numeric-by-component semver-ish comparison of a
// and b, treating missing trailing components as 0. It returns -1, 0, or
// 1.
func VersionCompare(a, b string) int {
	pa, pb := parseVersion(a), parseVersion(b)
	n := len(pa)
	if len(pb) > n {
		n = len(pb)
	}
	for i := 0; i < n; i++ {
		var va, vb int
		if i < len(pa) {
			va = pa[i]
		}
		if i < len(pb) {
			vb = pb[i]
		}
		if va != vb {
			if va < vb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// VersionHasUpdate reports whether latest is strictly newer than current.
func VersionHasUpdate(current, latest string) bool {
	return VersionCompare(current, latest) < 0
}

func parseVersion(v string) []int {
	parts := strings.Split(strings.TrimPrefix(v, "v"), ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			n = 0
		}
		out[i] = n
	}
	return out
}
