package build

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// copyDirContents mirrors everything under srcDir in src into dst and returns
// the number of files written.
func copyDirContents(src fs.FS, srcDir, dst string) (int, error) {
	var copied int
	err := fs.WalkDir(src, srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != srcDir && hiddenName(p) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, srcDir), "/")
		dstPath := filepath.Join(dst, filepath.FromSlash(rel))

		if d.IsDir() {
			// Source directory modes from embed.FS are read-only, so never reuse them.
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(src, p, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", p, dstPath, err)
		}
		copied++
		return nil
	})
	return copied, err
}

func copyFile(src fs.FS, name, dstFile string) error {
	srcF, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", name, err)
	}
	defer srcF.Close()

	dstDir := filepath.Dir(dstFile)
	if err := os.MkdirAll(dstDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", dstDir, err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", name, dstFile, err)
	}
	return dstF.Close()
}

// hiddenName reports dotfiles such as editor swap files that should not ship.
func hiddenName(p string) bool {
	return strings.HasPrefix(path.Base(p), ".")
}
