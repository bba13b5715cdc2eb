// Package autocorrect implements the word-boundary correction layer
// (Component G): on a break key, it looks up the just-typed raw word in
// a host-supplied shortcut store and, failing that, in a static
// dictionary (Vietnamese, English, or both), then reproduces the original
// word's case pattern onto the replacement.
package autocorrect

import (
	"strings"
	"sync"
	"unicode"

	"github.com/nguyennhuanhle/gonhanh.org/internal/rebuild"
	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

// ShortcutLookup is satisfied by internal/shortcuts' store. User-defined
// shortcuts take priority over the built-in dictionaries.
type ShortcutLookup interface {
	Lookup(word string) (string, bool)
}

// Corrector holds the lazily-materialised correction dictionaries and an
// optional shortcut store. The zero value is ready to use; New returns
// a pointer to one.
type Corrector struct {
	once      sync.Once
	vi        map[string]string
	en        map[string]string
	shortcuts ShortcutLookup
}

// New returns a Corrector whose dictionaries are built on first use.
func New() *Corrector { return &Corrector{} }

// SetShortcuts installs (or clears, with nil) the user-defined shortcut
// store consulted before the built-in dictionaries.
func (c *Corrector) SetShortcuts(s ShortcutLookup) { c.shortcuts = s }

func (c *Corrector) ensureLoaded() {
	c.once.Do(func() {
		c.vi = vietnameseCorrections()
		c.en = englishCorrections()
	})
}

// Count reports how many built-in corrections are loaded in total,
// mirroring a helper the word-list data was ported from.
func (c *Corrector) Count() int {
	c.ensureLoaded()
	return len(c.vi) + len(c.en)
}

func (c *Corrector) lookup(mode types.AutocorrectMode, lower string) (string, bool) {
	if c.shortcuts != nil {
		if repl, ok := c.shortcuts.Lookup(lower); ok {
			return repl, true
		}
	}
	switch mode {
	case types.AutocorrectVietnamese:
		repl, ok := c.vi[lower]
		return repl, ok
	case types.AutocorrectEnglish:
		repl, ok := c.en[lower]
		return repl, ok
	case types.AutocorrectBoth:
		if repl, ok := c.vi[lower]; ok {
			return repl, true
		}
		repl, ok := c.en[lower]
		return repl, ok
	default:
		return "", false
	}
}

// Apply runs the word-boundary correction and returns the edit to send,
// or a zero Result if nothing matched.
// compositionLen is the number of displayed characters currently on
// screen for the word (one per composition cell); boundary is the
// literal character that ended the word (0 if it has none worth
// reinserting, e.g. Enter).
func (c *Corrector) Apply(mode types.AutocorrectMode, rawWord string, compositionLen int, boundary rune) rebuild.Result {
	if !mode.Enabled() || rawWord == "" {
		return rebuild.Result{}
	}
	c.ensureLoaded()
	lower := strings.ToLower(rawWord)
	repl, ok := c.lookup(mode, lower)
	if !ok {
		return rebuild.Result{}
	}
	cased := applyCasePattern(rawWord, repl)
	chars := []rune(cased)
	if boundary != 0 {
		chars = append(chars, boundary)
	}
	return rebuild.Result{BackspaceCount: compositionLen, Chars: chars}
}

// applyCasePattern reproduces original's case pattern onto replacement:
// all-upper stays all-upper, Title-case stays Title-case, everything
// else (all-lower or mixed) lowercases the replacement.
func applyCasePattern(original, replacement string) string {
	switch classifyCase(original) {
	case caseAllUpper:
		return strings.ToUpper(replacement)
	case caseTitle:
		return titleCase(replacement)
	default:
		return strings.ToLower(replacement)
	}
}

type caseKind uint8

const (
	caseLower caseKind = iota
	caseTitle
	caseAllUpper
	caseMixed
)

func classifyCase(s string) caseKind {
	letters := 0
	upper := 0
	firstUpper := false
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
			if i == 0 {
				firstUpper = true
			}
		}
	}
	switch {
	case letters == 0:
		return caseLower
	case upper == letters:
		return caseAllUpper
	case firstUpper && upper == 1:
		return caseTitle
	case upper == 0:
		return caseLower
	default:
		return caseMixed
	}
}

func titleCase(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
