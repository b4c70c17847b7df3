package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads KEY=VALUE lines from the given files (e.g. ".env") into the process environment.
// Variables already set are not overwritten. Missing files are skipped; a malformed file is an error.
func Load(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("env: %s: %w", p, err)
		}
	}
	return nil
}
