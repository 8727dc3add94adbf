package runner

import (
	"os"
	"sort"

	"go.trai.ch/stager/internal/core/domain"
)

// Evaluate decides whether the named stage must run by comparing the
// recorded hashes against the current filesystem state.
//
// The check walks the paths of the *previously recorded* snapshot, inputs
// before outputs, not the stage's currently declared lists. A stage whose
// declarations changed while the recorded files stayed untouched therefore
// still matches; save is what picks up the new declarations.
func (r *Runner) Evaluate(name string) (domain.Decision, error) {
	record, err := r.store.Load(name)
	if err != nil {
		return domain.Decision{}, err
	}
	if record == nil {
		return domain.Decision{Status: domain.StatusNoRecord}, nil
	}

	for _, section := range []map[string]string{record.Inputs, record.Outputs} {
		decision, matched, err := r.evaluateSection(section)
		if err != nil {
			return domain.Decision{}, err
		}
		if !matched {
			return decision, nil
		}
	}

	return domain.Decision{Status: domain.StatusMatch}, nil
}

// evaluateSection checks one recorded path set in lexicographic order and
// short-circuits on the first missing or changed file.
func (r *Runner) evaluateSection(section map[string]string) (domain.Decision, bool, error) {
	paths := make([]string, 0, len(section))
	for path := range section {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return domain.Decision{Status: domain.StatusFileMissing, Path: path}, false, nil
		}

		hash, err := r.hasher.HashFile(path)
		if err != nil {
			return domain.Decision{}, false, err
		}
		if hash != section[path] {
			return domain.Decision{Status: domain.StatusFileChanged, Path: path}, false, nil
		}
	}

	return domain.Decision{}, true, nil
}
