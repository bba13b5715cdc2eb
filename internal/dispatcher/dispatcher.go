// Package dispatcher implements the engine's top-level per-key state
// machine (Component F): it classifies each incoming key, routes it to
// the composition-buffer transformation rules, the auto-correct layer, or
// a plain clear/pass-through, and returns the edit the host applies. It
// is the only place that holds engine state; everything underneath it is
// stateless or takes explicit state.
package dispatcher

import (
	"github.com/nguyennhuanhle/gonhanh.org/internal/autocorrect"
	"github.com/nguyennhuanhle/gonhanh.org/internal/compose"
	"github.com/nguyennhuanhle/gonhanh.org/internal/keytable"
	"github.com/nguyennhuanhle/gonhanh.org/internal/rebuild"
	"github.com/nguyennhuanhle/gonhanh.org/internal/rules"
	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

// Config is the mutable engine configuration.
type Config struct {
	Method          types.Method
	Enabled         bool
	ModernTone      bool
	AutocorrectMode types.AutocorrectMode
}

// Engine is the process-wide IME state: the composition buffer, its raw
// keystroke shadow, the pending revert record, and configuration. The
// host owns one instance and must serialize calls into it; the
// engine itself assumes single-threaded access.
type Engine struct {
	cfg  Config
	buf  compose.Buffer
	raw  compose.RawView
	last rules.LastTransformation
	corr *autocorrect.Corrector
}

// New constructs an Engine with the given initial configuration.
// Initialize is idempotent by construction: calling New again simply
// yields another zero-state engine.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, corr: autocorrect.New()}
}

// SetMethod changes the keying convention, invalidating any in-progress
// composition.
func (e *Engine) SetMethod(m types.Method) {
	e.cfg.Method = m
	e.reset()
}

// SetEnabled toggles the engine on/off, invalidating any in-progress
// composition.
func (e *Engine) SetEnabled(v bool) {
	e.cfg.Enabled = v
	e.reset()
}

// SetModernTone toggles modern vs. traditional open-syllable tone
// placement, invalidating any in-progress composition.
func (e *Engine) SetModernTone(v bool) {
	e.cfg.ModernTone = v
	e.reset()
}

// SetAutocorrectMode changes which dictionaries word-boundary
// auto-correct consults, invalidating any in-progress composition. An
// out-of-range mode value is ignored; the previous configuration is
// retained.
func (e *Engine) SetAutocorrectMode(m types.AutocorrectMode) {
	if m > types.AutocorrectBoth {
		return
	}
	e.cfg.AutocorrectMode = m
	e.reset()
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) reset() {
	e.buf.Clear()
	e.raw.Clear()
	e.last.Clear()
}

// ProcessKey is the engine's single hot-path operation.
// chordModifier must be true when the host detected a Ctrl/Alt/Cmd chord
// on this keystroke; the host is expected to classify that itself since
// the abstract keycode space carries no modifier bit.
func (e *Engine) ProcessKey(k keytable.Keycode, shift, caps, chordModifier bool) rebuild.Result {
	if !e.cfg.Enabled || chordModifier {
		e.reset()
		return rebuild.Result{}
	}

	switch keytable.Classify(k) {
	case keytable.ClassBackspace:
		if e.buf.Len() > 0 {
			e.buf.Pop()
			e.raw.Pop()
		}
		e.last.Clear()
		return rebuild.Result{}

	case keytable.ClassBreak:
		res := e.handleBreak(k)
		e.reset()
		return res

	case keytable.ClassLetterOrDigit:
		letter, ok := keytable.FromKeycode(k)
		if !ok {
			return rebuild.Result{}
		}
		return e.handleLetter(letter, shift || caps)

	default:
		return rebuild.Result{}
	}
}

func (e *Engine) handleBreak(k keytable.Keycode) rebuild.Result {
	if !e.cfg.AutocorrectMode.Enabled() || e.buf.Len() == 0 {
		return rebuild.Result{}
	}
	boundary := boundaryRune(k)
	return e.corr.Apply(e.cfg.AutocorrectMode, e.raw.Word(), e.buf.Len(), boundary)
}

// boundaryRune renders the literal character a break keycode represents,
// for appending after an auto-correct replacement. Non-printable break
// keys (tab, enter, arrows, escape) render as nothing extra; the host
// still forwards the original key to the application unchanged.
func boundaryRune(k keytable.Keycode) rune {
	if k == keytable.KeySpace {
		return ' '
	}
	if k >= 0x20 && k < 0x7F {
		return rune(k)
	}
	return 0
}

func (e *Engine) handleLetter(letter keytable.Letter, caps bool) rebuild.Result {
	table := keytable.Table(e.cfg.Method)
	in := rules.Input{Key: letter, Caps: caps, Table: table, ModernTone: e.cfg.ModernTone}

	if res, matched := rules.Apply(&e.buf, &e.raw, &e.last, in); matched {
		return e.selfHealIfBroken(res)
	}
	return e.selfHealIfBroken(rules.Append(&e.buf, &e.raw, &e.last, in))
}

// selfHealIfBroken implements a narrow self-heal path: if a rule somehow
// left the buffer violating its invariants, the engine re-renders the
// whole buffer as a replacement edit and clears, rather than surface
// a user-visible error. The edit is an ordinary rebuild.Result, so its
// Action() reports action=send; ActionRestore is never produced.
func (e *Engine) selfHealIfBroken(res rebuild.Result) rebuild.Result {
	if e.buf.Len() <= compose.Capacity && e.buf.MarkIndex() == e.lastMarkIndexOrNegOne() {
		return res
	}
	chars := make([]rune, 0, e.buf.Len())
	for i := 0; i < e.buf.Len(); i++ {
		chars = append(chars, rebuild.Render(e.buf.Get(i)))
	}
	restore := rebuild.Result{BackspaceCount: e.buf.Len(), Chars: chars}
	e.reset()
	return restore
}

// lastMarkIndexOrNegOne re-derives the mark count check: more than one
// marked cell is the only invariant violation a rule bug could plausibly
// introduce, since every rule clears the existing mark before setting a
// new one.
func (e *Engine) lastMarkIndexOrNegOne() int {
	count := 0
	idx := -1
	for i := 0; i < e.buf.Len(); i++ {
		if e.buf.Get(i).Mark != types.MarkNone {
			count++
			idx = i
		}
	}
	if count > 1 {
		return -2 // sentinel that can never equal MarkIndex(), forcing the restore path
	}
	return idx
}
