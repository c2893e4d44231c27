// Package selection turns discovery results plus user intent into the
// activation plan handed to the dictionary library.
package selection

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/NouGithub/sdcv/pkg/discovery"
	"github.com/NouGithub/sdcv/pkg/errors"
	"github.com/NouGithub/sdcv/pkg/logging"
)

// Plan is the authoritative activation plan: Order lists descriptor
// paths in activation priority, Disable lists descriptor paths that must
// not be loaded.
type Plan struct {
	Order   []string
	Disable []string
}

// Resolve computes the activation plan from the discovered mapping.
//
// With explicit booknames (--use-dict) every discovered dictionary not
// named is disabled, and the named ones are ordered exactly as given on
// the command line. Without explicit names nothing is disabled; the
// ordering preference file (if present) only reorders, one bookname per
// line. The asymmetry is deliberate and mirrors the persisted-preference
// contract: a preference file must never deactivate a dictionary.
//
// A bookname absent from the mapping, from either source, is a fatal
// consistency error; no partial plan is returned.
func Resolve(m discovery.Map, explicit []string, orderingFile string) (Plan, error) {
	if len(explicit) > 0 {
		return resolveExplicit(m, explicit)
	}
	return resolveOrderingFile(m, orderingFile)
}

func resolveExplicit(m discovery.Map, explicit []string) (Plan, error) {
	var plan Plan

	// Disable the complement, iterating booknames in sorted order so the
	// result does not depend on map iteration.
	booknames := make([]string, 0, len(m))
	for bookname := range m {
		booknames = append(booknames, bookname)
	}
	sort.Strings(booknames)
	for _, bookname := range booknames {
		requested := false
		for _, name := range explicit {
			if bookname == name {
				requested = true
				break
			}
		}
		if !requested {
			plan.Disable = append(plan.Disable, m[bookname])
		}
	}

	for _, name := range explicit {
		path, ok := m[name]
		if !ok {
			return Plan{}, errors.Newf(errors.ErrDictNotFound, "no dictionary with bookname %q", name)
		}
		plan.Order = append(plan.Order, path)
	}

	log := logging.GetLogger("selection")
	log.Debug().
		Strs("order", plan.Order).
		Strs("disable", plan.Disable).
		Msg("explicit selection resolved")
	return plan, nil
}

func resolveOrderingFile(m discovery.Map, orderingFile string) (Plan, error) {
	var plan Plan

	f, err := os.Open(orderingFile)
	if err != nil {
		if os.IsNotExist(err) {
			// No persisted preference; the library falls back to
			// discovery order.
			return plan, nil
		}
		return Plan{}, errors.Wrapf(err, errors.ErrOrderingRead, "cannot read %s", orderingFile)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		bookname := strings.TrimRight(scanner.Text(), "\r")
		path, ok := m[bookname]
		if !ok {
			return Plan{}, errors.Newf(errors.ErrDictNotFound, "no dictionary with bookname %q", bookname).
				WithDetail("ordering_file", orderingFile)
		}
		plan.Order = append(plan.Order, path)
	}
	if err := scanner.Err(); err != nil {
		return Plan{}, errors.Wrapf(err, errors.ErrOrderingRead, "cannot read %s", orderingFile)
	}

	log := logging.GetLogger("selection")
	log.Debug().
		Strs("order", plan.Order).
		Msg("ordering preference applied")
	return plan, nil
}
