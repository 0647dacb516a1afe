package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/db"
)

// InitState reports which files a first run has to create.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// DetectInitState looks for the config file and the event database.
func DetectInitState(cfg *config.Config) (InitState, error) {
	state := InitState{
		ConfigPath: config.DefaultConfigPath(),
		DBPath:     cfg.Storage.DBPath,
	}

	var err error
	if state.ConfigMissing, err = missing(state.ConfigPath); err != nil {
		return InitState{}, fmt.Errorf("checking config: %w", err)
	}
	if state.DBMissing, err = missing(state.DBPath); err != nil {
		return InitState{}, fmt.Errorf("checking database: %w", err)
	}
	state.NeedsInit = state.ConfigMissing || state.DBMissing
	return state, nil
}

// Message is the status line shown after a first run, or "" if nothing
// was created.
func (s InitState) Message() string {
	var created []string
	if s.ConfigMissing {
		created = append(created, s.ConfigPath)
	}
	if s.DBMissing {
		created = append(created, s.DBPath)
	}
	if len(created) == 0 {
		return ""
	}
	return "Created " + strings.Join(created, " and ")
}

func missing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, err
	}
}

// initializeStorage saves the in-memory config when the file is missing and
// opens (creating if needed) the database.
func initializeStorage(cfg *config.Config, state InitState) (*db.SQLite, error) {
	if state.ConfigMissing {
		if err := cfg.SaveTo(state.ConfigPath); err != nil {
			return nil, fmt.Errorf("saving config: %w", err)
		}
	}
	repo, err := db.New(state.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return repo, nil
}
