// Package ifo parses StarDict dictionary descriptor (.ifo) files.
//
// A descriptor is a small UTF-8 key=value file sitting next to the
// dictionary data files. Only the metadata consumed by session bootstrap
// is surfaced here; the dictionary content itself is never touched.
package ifo

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/NouGithub/sdcv/pkg/errors"
)

// Magic is the mandatory first line of every descriptor file
const Magic = "StarDict's dict ifo file"

// Suffix is the descriptor file name suffix used during discovery
const Suffix = ".ifo"

// DictInfo holds the descriptor metadata for one dictionary
type DictInfo struct {
	// Bookname is the display name, unique selection key within a run
	Bookname string

	// Path is the location of the descriptor file itself
	Path string

	// WordCount is informational (list mode)
	WordCount int

	// Version is the descriptor format version, kept for diagnostics
	Version string
}

// Load reads and parses one descriptor file. Any malformed file yields
// an error; discovery treats that as skip-and-continue, never as fatal.
func Load(path string) (*DictInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIfoAccess, "cannot open %s", path)
	}
	defer f.Close()

	info := &DictInfo{Path: path, WordCount: -1}

	scanner := bufio.NewScanner(f)
	sawMagic := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !sawMagic {
			// Tolerate a UTF-8 BOM in front of the magic line
			line = strings.TrimPrefix(line, "\ufeff")
			if line != Magic {
				return nil, errors.Newf(errors.ErrIfoParse, "%s: not a dictionary descriptor", path)
			}
			sawMagic = true
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "bookname":
			info.Bookname = value
		case "wordcount":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrIfoParse, "%s: bad wordcount %q", path, value)
			}
			info.WordCount = n
		case "version":
			info.Version = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIfoAccess, "cannot read %s", path)
	}

	if !sawMagic {
		return nil, errors.Newf(errors.ErrIfoParse, "%s: not a dictionary descriptor", path)
	}
	if info.Bookname == "" {
		return nil, errors.Newf(errors.ErrIfoParse, "%s: missing bookname", path)
	}
	if info.WordCount < 0 {
		return nil, errors.Newf(errors.ErrIfoParse, "%s: missing wordcount", path)
	}
	return info, nil
}
