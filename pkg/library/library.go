// Package library implements the dictionary collaborator consumed by
// the session layer: loading the active dictionary set according to an
// activation plan, and processing individual phrases.
//
// Content matching is pluggable through the Engine interface; this
// package only deals with dictionary metadata and presentation.
package library

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/NouGithub/sdcv/pkg/discovery"
	"github.com/NouGithub/sdcv/pkg/errors"
	"github.com/NouGithub/sdcv/pkg/ifo"
	"github.com/NouGithub/sdcv/pkg/logging"
)

// Phraser is the contract the session dispatcher drives. A nil error
// from ProcessPhrase means the phrase was handled (found or not); a
// non-nil error terminates the whole run.
type Phraser interface {
	Load(dirs, order, disable []string) error
	ProcessPhrase(phrase string, interactive bool) error
}

// Definition is one rendered match produced by an Engine
type Definition struct {
	Bookname string
	Word     string
	Text     string
}

// Engine performs the actual content lookup against loaded
// dictionaries. The matching algorithm lives entirely behind this
// interface.
type Engine interface {
	Lookup(word string, dicts []*ifo.DictInfo) []Definition
}

// Options configures a Library
type Options struct {
	Utf8Input  bool
	Utf8Output bool
	Colorize   bool

	// Out receives all phrase output; defaults to os.Stdout
	Out io.Writer

	// Engine performs content lookups; nil means no matches
	Engine Engine
}

// Library holds the loaded dictionary set and processes phrases
type Library struct {
	opts  Options
	dicts []*ifo.DictInfo

	phraseStyle lipgloss.Style
	bookStyle   lipgloss.Style
}

// New creates a Library; Load must be called before processing phrases
func New(opts Options) *Library {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	l := &Library{opts: opts}
	if opts.Colorize {
		l.phraseStyle = lipgloss.NewStyle().Bold(true)
		l.bookStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	}
	return l
}

// Dicts returns the active dictionaries in activation order
func (l *Library) Dicts() []*ifo.DictInfo {
	return l.dicts
}

// Load scans the directory set and activates dictionaries according to
// the plan: paths in disable are dropped, paths in order come first in
// the given order, everything else follows in discovery order. Order
// paths that the scan did not produce are a fatal consistency error.
func (l *Library) Load(dirs, order, disable []string) error {
	logger := logging.GetLogger("library")

	disabled := make(map[string]bool, len(disable))
	for _, path := range disable {
		disabled[path] = true
	}

	byPath := make(map[string]*ifo.DictInfo)
	var scanned []string
	discovery.Scan(dirs, func(info *ifo.DictInfo) {
		if disabled[info.Path] {
			return
		}
		if _, ok := byPath[info.Path]; !ok {
			scanned = append(scanned, info.Path)
		}
		byPath[info.Path] = info
	})

	l.dicts = l.dicts[:0]
	taken := make(map[string]bool, len(order))
	for _, path := range order {
		info, ok := byPath[path]
		if !ok {
			return errors.Newf(errors.ErrLibraryLoad, "ordered dictionary vanished: %s", path)
		}
		l.dicts = append(l.dicts, info)
		taken[path] = true
	}
	for _, path := range scanned {
		if !taken[path] {
			l.dicts = append(l.dicts, byPath[path])
		}
	}

	logger.Info().Int("dictionaries", len(l.dicts)).Msg("library loaded")
	for _, d := range l.dicts {
		logger.Debug().Str("bookname", d.Bookname).Str("path", d.Path).Msg("active dictionary")
	}
	return nil
}

// ProcessPhrase looks up one phrase and renders the result. Empty
// phrases are a no-op. A phrase that is not valid UTF-8 and cannot be
// coerced is a failure that terminates the run.
func (l *Library) ProcessPhrase(phrase string, interactive bool) error {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil
	}

	if !utf8.ValidString(phrase) {
		if !l.opts.Utf8Input {
			return errors.Newf(errors.ErrPhrase, "phrase is not valid UTF-8: %q", phrase)
		}
		phrase = strings.ToValidUTF8(phrase, "")
	}

	log := logging.GetLogger("library")
	log.Debug().
		Str("phrase", phrase).
		Bool("interactive", interactive).
		Msg("processing phrase")

	var defs []Definition
	if l.opts.Engine != nil {
		defs = l.opts.Engine.Lookup(phrase, l.dicts)
	}

	if len(defs) == 0 {
		l.printf("Nothing similar to %s, sorry :(\n", l.phraseStyle.Render(phrase))
		return nil
	}

	l.printf("Found %d items, similar to %s.\n", len(defs), l.phraseStyle.Render(phrase))
	for _, def := range defs {
		l.printf("-->%s\n-->%s\n\n%s\n\n",
			l.bookStyle.Render(def.Bookname),
			l.phraseStyle.Render(def.Word),
			def.Text)
	}
	return nil
}

func (l *Library) printf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if l.opts.Utf8Output {
		s = strings.ToValidUTF8(s, "")
	}
	fmt.Fprint(l.opts.Out, s)
}
