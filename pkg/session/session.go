// Package session decides the top-level session mode and drives it:
// dictionary listing, batch phrase processing, or the interactive loop.
package session

import (
	"fmt"
	"io"
	"os"

	"github.com/NouGithub/sdcv/pkg/discovery"
	"github.com/NouGithub/sdcv/pkg/ifo"
	"github.com/NouGithub/sdcv/pkg/library"
	"github.com/NouGithub/sdcv/pkg/logging"
	"github.com/NouGithub/sdcv/pkg/readline"
)

// Mode is the mutually exclusive top-level behavior, chosen once per run
type Mode int

const (
	// ModeInteractive prompts for phrases until end-of-input
	ModeInteractive Mode = iota
	// ModeBatch processes positional phrase arguments in order
	ModeBatch
	// ModeListDicts prints every discovered dictionary and exits
	ModeListDicts
	// ModeEmptyBatch is non-interactive mode with no phrases
	ModeEmptyBatch
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeBatch:
		return "batch"
	case ModeListDicts:
		return "list-dicts"
	case ModeEmptyBatch:
		return "empty-batch"
	default:
		return "unknown"
	}
}

// Decide picks the session mode from flags and positional arguments
func Decide(listDicts, nonInteractive bool, phrases []string) Mode {
	switch {
	case listDicts:
		return ModeListDicts
	case len(phrases) > 0:
		return ModeBatch
	case !nonInteractive:
		return ModeInteractive
	default:
		return ModeEmptyBatch
	}
}

// Prompt is shown before every interactive read
const Prompt = "Enter word or phrase: "

// Dispatcher routes one run into its session mode. Every mode is
// fail-fast: the first phrase the library reports as failed terminates
// the run.
type Dispatcher struct {
	// Library processes phrases; unused in list mode
	Library library.Phraser

	// Reader supplies interactive input; unused outside interactive mode
	Reader readline.ReadLiner

	// NonInteractive is forwarded to the library for batch phrases
	NonInteractive bool

	// Out receives list output and the final interactive newline
	// (defaults to os.Stdout)
	Out io.Writer

	// Diag receives diagnostics (defaults to os.Stderr)
	Diag io.Writer
}

func (d *Dispatcher) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}

func (d *Dispatcher) diag() io.Writer {
	if d.Diag != nil {
		return d.Diag
	}
	return os.Stderr
}

// Run executes the chosen mode. dirs is only consulted in list mode,
// which re-scans independently of any selection state.
func (d *Dispatcher) Run(mode Mode, phrases, dirs []string) error {
	log := logging.GetLogger("session")
	log.Debug().Stringer("mode", mode).Msg("dispatching")

	switch mode {
	case ModeListDicts:
		d.listDicts(dirs)
		return nil
	case ModeBatch:
		return d.batch(phrases)
	case ModeInteractive:
		return d.interactive()
	case ModeEmptyBatch:
		// Historical behavior: a diagnostic is printed but the run still
		// succeeds.
		fmt.Fprintln(d.diag(), "There are no words/phrases to translate.")
		return nil
	default:
		panic(fmt.Sprintf("unknown session mode %d", mode))
	}
}

// listDicts prints every successfully parsed descriptor, ignoring any
// prior selection.
func (d *Dispatcher) listDicts(dirs []string) {
	fmt.Fprintln(d.out(), "Dictionary's name   Word count")
	discovery.Scan(dirs, func(info *ifo.DictInfo) {
		fmt.Fprintf(d.out(), "%s    %d\n", info.Bookname, info.WordCount)
	})
}

func (d *Dispatcher) batch(phrases []string) error {
	for _, phrase := range phrases {
		if err := d.Library.ProcessPhrase(phrase, !d.NonInteractive); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) interactive() error {
	for {
		phrase, more := d.Reader.Read(Prompt)
		if !more {
			fmt.Fprintln(d.out())
			return nil
		}
		if err := d.Library.ProcessPhrase(phrase, true); err != nil {
			return err
		}
	}
}
