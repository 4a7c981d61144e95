// Package state carries the cross-screen UI session: who is signed in
// and which language the interface renders in.
package state

import (
	"github.com/abhisek/lymphwatch/internal/config"
	"github.com/abhisek/lymphwatch/internal/i18n"
)

// State is shared by all screens. The TUI is single-goroutine, so plain
// field access is safe.
type State struct {
	// Loc resolves display strings for the active language.
	Loc *i18n.Localizer
	// User is the signed-in username, empty before login.
	User string

	cfg     config.Config
	cfgPath string
}

// New creates the shared state from loaded configuration.
func New(cfg config.Config, cfgPath string, loc *i18n.Localizer) *State {
	return &State{Loc: loc, cfg: cfg, cfgPath: cfgPath}
}

// Config returns the active configuration.
func (s *State) Config() config.Config {
	return s.cfg
}

// SetLanguage switches the interface language and persists the choice.
// The Localizer is replaced, so screens re-rendering through s.Loc pick
// up the new language immediately.
func (s *State) SetLanguage(tag string) error {
	loc, err := i18n.New(tag)
	if err != nil {
		return err
	}
	s.Loc = loc
	s.cfg.Language = loc.Tag().String()
	if s.cfgPath == "" {
		return nil
	}
	return config.Save(s.cfgPath, s.cfg)
}
