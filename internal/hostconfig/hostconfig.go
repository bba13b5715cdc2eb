// Package hostconfig loads and hot-reloads the host-facing engine
// settings (method, enabled, modern tone, auto-correct mode) from a TOML
// settings file, with an optional import path from a legacy ini-based
// settings file for hosts migrating off one.
package hostconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/go-ini/ini"

	"github.com/nguyennhuanhle/gonhanh.org/internal/types"
)

// Settings is the persisted, host-facing configuration shape.
type Settings struct {
	Method          string `toml:"method"`
	Enabled         bool   `toml:"enabled"`
	ModernTone      bool   `toml:"modern_tone"`
	AutocorrectMode string `toml:"autocorrect_mode"`
}

// Defaults returns the settings a fresh host starts with.
func Defaults() Settings {
	return Settings{Method: "telex", Enabled: true, ModernTone: true, AutocorrectMode: "off"}
}

// ToMethod and ToAutocorrectMode translate the persisted string enums into
// the typed enums the engine expects. Unrecognised values fall back to the
// corresponding default: a configuration value out of range is ignored,
// not an error.
func (s Settings) ToMethod() types.Method {
	if s.Method == "vni" {
		return types.MethodVNI
	}
	return types.MethodTelex
}

func (s Settings) ToAutocorrectMode() types.AutocorrectMode {
	switch s.AutocorrectMode {
	case "vi":
		return types.AutocorrectVietnamese
	case "en":
		return types.AutocorrectEnglish
	case "both":
		return types.AutocorrectBoth
	default:
		return types.AutocorrectOff
	}
}

// Loader reads a TOML settings file and can watch it for changes,
// invoking registered callbacks on reload.
type Loader struct {
	path string

	mu       sync.RWMutex
	settings Settings

	watcher  *fsnotify.Watcher
	onChange []func(Settings)
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewLoader creates a Loader for the settings file at path.
func NewLoader(path string) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{path: path, settings: Defaults(), ctx: ctx, cancel: cancel}
}

// Load reads and parses the settings file. A missing file is not an
// error: the loader keeps its current (default, or last-good) settings.
func (l *Loader) Load() (Settings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return l.settings, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", l.path, err)
	}

	cfg := Defaults()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", l.path, err)
	}
	l.settings = cfg
	return cfg, nil
}

// Settings returns the most recently loaded settings.
func (l *Loader) Settings() Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings
}

// OnChange registers a callback invoked with the new settings whenever
// Watch picks up a reload.
func (l *Loader) OnChange(fn func(Settings)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts watching the settings file's directory for changes. The
// caller must eventually call Close to stop the watch goroutine.
func (l *Loader) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	l.watcher = watcher

	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}
	go l.watchLoop()
	return nil
}

func (l *Loader) watchLoop() {
	for {
		select {
		case <-l.ctx.Done():
			return
		case ev, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != l.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := l.Load()
			if err != nil {
				continue
			}
			l.mu.RLock()
			callbacks := append([]func(Settings){}, l.onChange...)
			l.mu.RUnlock()
			for _, fn := range callbacks {
				fn(cfg)
			}
		case <-l.watcher.Errors:
		}
	}
}

// Close stops the watch goroutine and releases the fsnotify watcher.
func (l *Loader) Close() error {
	l.cancel()
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}

// ImportLegacyINI reads an old toggle.ini-style settings file (a single
// [general] section with a layout name and an enabled flag) and translates
// it into Settings, for hosts migrating off it onto the TOML format.
func ImportLegacyINI(path string) (Settings, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open legacy ini %s: %w", path, err)
	}
	section := cfg.Section("general")
	out := Defaults()
	if layout := section.Key("layout").String(); layout != "" {
		out.Method = layout
	}
	if enabled, err := section.Key("enabled").Bool(); err == nil {
		out.Enabled = enabled
	}
	return out, nil
}
