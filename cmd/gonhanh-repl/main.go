// Command gonhanh-repl is a terminal test harness for the engine: it
// reads raw keystrokes from the terminal, feeds them through
// pkg/gonhanh, and renders the resulting composition to stdout. It
// exists to exercise the engine interactively without a full desktop IME
// framework around it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"

	"github.com/nguyennhuanhle/gonhanh.org/internal/obslog"
	"github.com/nguyennhuanhle/gonhanh.org/pkg/gonhanh"
)

func main() {
	method := flag.String("method", "telex", "keying convention: telex or vni")
	autocorrect := flag.String("autocorrect", "off", "autocorrect mode: off, vi, en, both")
	modernTone := flag.Bool("modern-tone", true, "use modern open-syllable tone placement")
	flag.Parse()

	log := obslog.New("gonhanh-repl", obslog.LevelInfo)

	eng := gonhanh.New()
	eng.SetModernTone(*modernTone)
	if m, ok := parseMethod(*method); ok {
		eng.SetMethod(m)
	} else {
		log.Warn("unknown method %q, keeping default", *method)
	}
	if m, ok := parseAutocorrect(*autocorrect); ok {
		eng.SetAutocorrectMode(m)
	} else {
		log.Warn("unknown autocorrect mode %q, keeping default", *autocorrect)
	}

	if err := keyboard.Open(); err != nil {
		log.Error("open terminal: %v", err)
		os.Exit(1)
	}
	defer keyboard.Close()

	fmt.Println("gonhanh-repl: type, Esc to quit")
	var line []rune
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			log.Error("read key: %v", err)
			break
		}
		if key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
			break
		}

		code, shift, ok := translateKey(char, key)
		if !ok {
			continue
		}
		res := eng.ProcessKey(code, shift, false, false)
		line = applyEdit(line, res)
		fmt.Printf("\r%s\x1b[K", string(line))
	}
	fmt.Println()
}

func applyEdit(line []rune, res gonhanh.EditResult) []rune {
	switch res.Action {
	case gonhanh.ActionSend, gonhanh.ActionRestore:
		n := len(line) - int(res.BackspaceCount)
		if n < 0 {
			n = 0
		}
		line = line[:n]
		line = append(line, res.Chars[:res.ValidLen]...)
	}
	return line
}

// translateKey maps an eiannone/keyboard event onto gonhanh's abstract
// keycode space: letters/digits pass their uppercase ASCII
// code, everything else maps by class.
func translateKey(char rune, key keyboard.Key) (code uint16, shift, ok bool) {
	if key == keyboard.KeySpace {
		return uint16(' '), false, true
	}
	if key == keyboard.KeyEnter {
		return uint16('\r'), false, true
	}
	if key == keyboard.KeyTab {
		return uint16('\t'), false, true
	}
	if key == keyboard.KeyBackspace {
		return 0x08, false, true
	}
	if char == 0 {
		return 0, false, false
	}
	upper := char
	if upper >= 'a' && upper <= 'z' {
		upper = upper - 'a' + 'A'
		return uint16(upper), false, true
	}
	if upper >= 'A' && upper <= 'Z' {
		return uint16(upper), true, true
	}
	if upper >= '0' && upper <= '9' {
		return uint16(upper), false, true
	}
	return uint16(char), false, true
}

func parseMethod(s string) (gonhanh.Method, bool) {
	switch s {
	case "telex":
		return gonhanh.MethodTelex, true
	case "vni":
		return gonhanh.MethodVNI, true
	default:
		return 0, false
	}
}

func parseAutocorrect(s string) (gonhanh.AutocorrectMode, bool) {
	switch s {
	case "off":
		return gonhanh.AutocorrectOff, true
	case "vi":
		return gonhanh.AutocorrectVietnamese, true
	case "en":
		return gonhanh.AutocorrectEnglish, true
	case "both":
		return gonhanh.AutocorrectBoth, true
	default:
		return 0, false
	}
}
