// Package readline provides the interactive line-reader used by the
// session loop. On a terminal it wraps chzyer/readline with persistent
// history; otherwise it degrades to plain buffered reads so piped input
// keeps working.
package readline

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/NouGithub/sdcv/pkg/logging"
)

// ReadLiner reads one phrase at a time. The boolean result reports
// whether more input may follow; false means clean end-of-input (EOF or
// interrupt), never an error.
type ReadLiner interface {
	Read(prompt string) (string, bool)
}

// New returns the best ReadLiner for the current stdin. historyFile may
// be empty to disable history.
func New(historyFile string) ReadLiner {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		rl, err := readline.NewEx(&readline.Config{
			HistoryFile:       historyFile,
			HistorySearchFold: true,
		})
		if err == nil {
			return &terminalReader{rl: rl}
		}
		log := logging.GetLogger("readline")
		log.Warn().Err(err).Msg("readline init failed, falling back to plain reads")
	}
	return &plainReader{scanner: bufio.NewScanner(os.Stdin)}
}

type terminalReader struct {
	rl *readline.Instance
}

func (t *terminalReader) Read(prompt string) (string, bool) {
	t.rl.SetPrompt(prompt)
	for {
		line, err := t.rl.Readline()
		switch err {
		case nil:
			return line, true
		case readline.ErrInterrupt:
			// ^C on a partial line clears it; ^C on an empty line ends
			// the session like EOF.
			if len(line) != 0 {
				continue
			}
			return "", false
		case io.EOF:
			return "", false
		default:
			log := logging.GetLogger("readline")
			log.Warn().Err(err).Msg("read failed")
			return "", false
		}
	}
}

type plainReader struct {
	scanner *bufio.Scanner
}

func (p *plainReader) Read(prompt string) (string, bool) {
	_, _ = os.Stdout.WriteString(prompt)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), true
}
