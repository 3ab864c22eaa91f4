package statecss

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// checkOutputDir verifies that the directory receiving the output exists.
// It is never created: a missing directory usually means a wrong root.
func checkOutputDir(outPath string) error {
	dir := filepath.Dir(outPath)
	info, err := os.Stat(dir)
	if err != nil {
		return pathError(ErrOutput, dir, err)
	}
	if !info.IsDir() {
		return pathError(ErrOutput, dir, errNotDir)
	}
	return nil
}

// writeFileAtomic replaces path with data. The content goes to a temporary
// file in the same directory first, so readers see either the old or the
// new stylesheet and a failed write leaves the old one intact.
func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
				err = multierr.Append(err, fmt.Errorf("remove temp file: %w", rmErr))
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		err = multierr.Append(fmt.Errorf("write temp file: %w", err), tmp.Close())
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	// CreateTemp uses 0600; generated assets are world readable
	if err = os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", base, err)
	}
	return nil
}
