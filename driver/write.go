package driver

import (
	"os"
	"path/filepath"

	"github.com/teranos/astgen/errors"
)

// WriteFile replaces path with data atomically: the bytes go to a temp file
// in the same directory which is synced and renamed over path. The parent
// directory must exist. Failures match ErrWrite and leave no temp file.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapWrite(err, "failed to create temp file for "+path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapWrite(err, "failed to write "+path)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.WrapWrite(err, "failed to sync "+path)
	}
	if err = tmp.Close(); err != nil {
		return errors.WrapWrite(err, "failed to close "+path)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return errors.WrapWrite(err, "failed to set permissions on "+path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.WrapWrite(err, "failed to replace "+path)
	}
	return nil
}
