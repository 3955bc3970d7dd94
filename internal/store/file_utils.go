// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeFileAtomic streams content produced by write into a temporary file
// next to path and renames it over path once write succeeds. The temporary
// file is removed on every failure path.
func writeFileAtomic(path string, write func(f *os.File) error) (err error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create snapshot dir: %w", ErrOpeningFile, err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpeningFile, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return nil
}

// readFile opens path and hands it to read, always closing the handle.
func readFile(path string, read func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrSnapshotNotFound
		}
		return fmt.Errorf("%w: %w", ErrOpeningFile, err)
	}
	defer f.Close()

	return read(f)
}
