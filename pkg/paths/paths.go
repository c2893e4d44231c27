// Package paths provides centralized path handling for sdcv.
// It resolves the dictionary directory set and the per-user files
// (ordering preference, history, configuration directory) from explicit
// options rather than ad hoc environment reads, so every consumer sees
// the same precedence chain.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/NouGithub/sdcv/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the compiled-in data directory
	EnvDataDir = "STARDICT_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultDataDir is the compiled-in fallback for the data directory
	DefaultDataDir = "/usr/share/stardict/dic"

	// StardictDirName is the per-user configuration directory under $HOME
	StardictDirName = ".stardict"

	// DicDirName is the dictionary subdirectory inside StardictDirName
	DicDirName = "dic"

	// OrderingFileName is the persisted dictionary ordering file under $HOME
	OrderingFileName = ".sdcv_ordering"

	// HistoryFileName is the interactive-mode history file under $HOME
	HistoryFileName = ".sdcv_history"
)

// Options carries the already-resolved inputs for path construction.
// Leaving a field empty falls through to the next precedence level.
type Options struct {
	// DataDir is the explicit --data-dir flag value (highest precedence)
	DataDir string

	// ConfigDataDir is the data_dir value from the user config file
	// (outranked by the flag and the environment variable)
	ConfigDataDir string

	// HomeDir overrides home resolution (used by tests)
	HomeDir string

	// Getenv is the environment lookup; defaults to os.Getenv
	Getenv func(string) string
}

// Paths provides centralized path management for sdcv
type Paths struct {
	home    string
	dataDir string
}

// New resolves the home directory and the data directory once.
// Data directory precedence: flag > STARDICT_DATA_DIR > config file >
// compiled default. Home precedence: Options.HomeDir > HOME > platform
// home. No filesystem access happens here.
func New(opts Options) (*Paths, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	home := opts.HomeDir
	if home == "" {
		home = getenv(EnvHome)
	}
	if home == "" {
		home = xdg.Home
	}
	if home == "" {
		return nil, errors.New(errors.ErrInternal, "cannot resolve home directory")
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = getenv(EnvDataDir)
	}
	if dataDir == "" {
		dataDir = opts.ConfigDataDir
	}
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	return &Paths{home: home, dataDir: dataDir}, nil
}

// HomeDir returns the resolved home directory
func (p *Paths) HomeDir() string {
	return p.home
}

// DataDir returns the resolved stardict data directory
func (p *Paths) DataDir() string {
	return p.dataDir
}

// UserDicDir returns the per-user dictionary directory ({home}/.stardict/dic)
func (p *Paths) UserDicDir() string {
	return filepath.Join(p.home, StardictDirName, DicDirName)
}

// DirectorySet returns the ordered dictionary directory list. The user
// directory comes first; directories scanned later win on bookname
// collisions, so the data directory outranks the personal copy.
func (p *Paths) DirectorySet() []string {
	return []string{p.UserDicDir(), p.dataDir}
}

// ConfDir returns the per-user configuration directory ({home}/.stardict)
func (p *Paths) ConfDir() string {
	return filepath.Join(p.home, StardictDirName)
}

// OrderingFile returns the persisted dictionary ordering file path
func (p *Paths) OrderingFile() string {
	return filepath.Join(p.home, OrderingFileName)
}

// HistoryFile returns the interactive-mode history file path
func (p *Paths) HistoryFile() string {
	return filepath.Join(p.home, HistoryFileName)
}

// EnsureConfDir creates the per-user configuration directory if missing.
// Idempotent; callers treat failure as non-fatal.
func (p *Paths) EnsureConfDir() error {
	if err := os.MkdirAll(p.ConfDir(), 0o700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", p.ConfDir())
	}
	return nil
}
