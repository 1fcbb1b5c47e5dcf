package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// LoadKeys reads a whitespace-separated integer list from path. Malformed
// tokens are skipped and their parse errors aggregated, so a partially bad
// file still yields every valid key; only a missing/unreadable file returns
// no keys at all. Callers report the error and keep going; bulk loading is
// never fatal.
func LoadKeys(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(string(data))
	keys := make([]int64, 0, len(fields))
	var tokenErrs error
	for _, tok := range fields {
		key, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			tokenErrs = multierr.Append(tokenErrs, fmt.Errorf("token %q: %w", tok, err))
			continue
		}
		keys = append(keys, key)
	}
	return keys, tokenErrs
}
