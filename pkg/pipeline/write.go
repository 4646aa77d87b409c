package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// staged is a fully written temporary file waiting to replace path.
type staged struct {
	tmp  string
	path string
}

// stage writes data to a temporary file in path's directory.
func stage(path string, data []byte) (staged, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return staged{}, fmt.Errorf("create temp for %s: %w", path, err)
	}
	s := staged{tmp: tmp.Name(), path: path}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.discard()
		return staged{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		s.discard()
		return staged{}, fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		s.discard()
		return staged{}, fmt.Errorf("close %s: %w", path, err)
	}
	return s, nil
}

func (s staged) commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		s.discard()
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}

func (s staged) discard() { _ = os.Remove(s.tmp) }

// writeAtomic writes data to path through a temporary file in the same
// directory and a rename. Readers see either the old file or the new one.
func writeAtomic(path string, data []byte) error {
	s, err := stage(path, data)
	if err != nil {
		return err
	}
	return s.commit()
}

// writeAllAtomic writes a set of files that belong together. Every file is
// staged before any is renamed, so a failed write leaves all targets as they
// were. If a rename fails, targets already replaced by this call are removed
// so that no new file is left beside a stale partner.
func writeAllAtomic(paths []string, data [][]byte) error {
	files := make([]staged, 0, len(paths))
	for i, path := range paths {
		s, err := stage(path, data[i])
		if err != nil {
			for _, f := range files {
				f.discard()
			}
			return err
		}
		files = append(files, s)
	}
	for i, f := range files {
		if err := f.commit(); err != nil {
			for _, done := range files[:i] {
				_ = os.Remove(done.path)
			}
			for _, rest := range files[i+1:] {
				rest.discard()
			}
			return err
		}
	}
	return nil
}
