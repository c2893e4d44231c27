// Package discovery scans the dictionary directory set for descriptor
// files and builds the bookname-to-descriptor mapping used by selection.
package discovery

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/NouGithub/sdcv/pkg/ifo"
	"github.com/NouGithub/sdcv/pkg/logging"
)

// Map maps a bookname to its descriptor path. Built fresh each run,
// never persisted.
type Map map[string]string

// Scan walks the directories in the given order and calls visit for
// every descriptor that parses. Malformed descriptors are skipped, and
// directories that do not exist or cannot be read are ignored. Within a
// directory the walk is recursive and lexical, so visit order is
// deterministic.
func Scan(dirs []string, visit func(info *ifo.DictInfo)) {
	logger := logging.GetLogger("discovery")

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ifo.Suffix) {
				return nil
			}
			info, err := ifo.Load(path)
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("skipping descriptor")
				return nil
			}
			visit(info)
			return nil
		})
		if err != nil {
			logger.Debug().Err(err).Str("dir", dir).Msg("scan aborted for directory")
		}
	}
}

// Discover builds the bookname mapping from the given directory set.
// The merge is an explicit ordered overwrite: a descriptor found in a
// later directory replaces an earlier entry with the same bookname, so
// directories scanned later take precedence. In the default two-entry
// set this makes the system data directory win over the user's personal
// copy of the same dictionary.
func Discover(dirs []string) Map {
	m := make(Map)
	Scan(dirs, func(info *ifo.DictInfo) {
		if prev, ok := m[info.Bookname]; ok {
			log := logging.GetLogger("discovery")
			log.Debug().
				Str("bookname", info.Bookname).
				Str("replaced", prev).
				Str("with", info.Path).
				Msg("later directory overrides earlier descriptor")
		}
		m[info.Bookname] = info.Path
	})
	return m
}
