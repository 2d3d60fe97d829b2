// Package common holds small filesystem and formatting helpers shared by
// both pipelines.
package common

import (
	"os"

	"github.com/pkg/errors"
)

// EnsureOutputDir recursively creates path if missing, matching the
// original ensure_output_dir(path) helper (os.makedirs(path, exist_ok=True))
// present verbatim in both Python param modules.
func EnsureOutputDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", path)
	}
	return nil
}
