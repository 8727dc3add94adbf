package venv

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a short digest of a process environment, in
// deterministic order. It is logged before provisioning so differing runs
// can be told apart without dumping every variable.
func Fingerprint(env []string) string {
	sorted := make([]string, len(env))
	copy(sorted, env)
	sort.Strings(sorted)

	digest := xxhash.New()
	for _, entry := range sorted {
		_, _ = digest.WriteString(entry)
		_, _ = digest.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}
