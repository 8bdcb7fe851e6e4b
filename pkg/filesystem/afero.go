package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/stampname/pkg/errors"
	"github.com/arthur-debert/stampname/pkg/logging"
	"github.com/spf13/afero"
)

// MatchAll is the glob used when a pattern names only a directory.
const MatchAll = "*"

// SplitPattern splits a directory pattern such as "photos/*.jpg" into its
// base directory and file glob. A pattern naming an existing directory, or
// ending in a separator, matches every file in it.
func SplitPattern(fsys afero.Fs, pattern string) (dir, glob string) {
	if isDir(fsys, pattern) {
		return filepath.Clean(pattern), MatchAll
	}

	dir, glob = filepath.Split(pattern)
	if glob == "" {
		glob = MatchAll
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Clean(dir), glob
}

// ListMatches returns the files under dir whose base name matches glob.
// Without recurse only the immediate children are considered. The result
// is complete before the caller touches anything, so renamed files are
// never seen twice.
func ListMatches(fsys afero.Fs, dir, glob string, recurse bool) ([]string, error) {
	if _, err := filepath.Match(glob, ""); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid file pattern %q", glob).
			WithDetail("pattern", glob)
	}

	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnumerate, "cannot read directory %s", dir).
			WithDetail("dir", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrEnumerate, "%s is not a directory", dir).
			WithDetail("dir", dir)
	}

	if !recurse {
		return listDir(fsys, dir, glob)
	}
	return walkDir(fsys, dir, glob)
}

func listDir(fsys afero.Fs, dir, glob string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnumerate, "cannot read directory %s", dir).
			WithDetail("dir", dir)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(glob, entry.Name()); ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	return matches, nil
}

func walkDir(fsys afero.Fs, root, glob string) ([]string, error) {
	logger := logging.GetLogger("filesystem")

	var matches []string
	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(glob, info.Name()); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnumerate, "cannot walk directory %s", root).
			WithDetail("dir", root)
	}
	return matches, nil
}

// Replace renames src to dst, replacing dst if it exists. The plain rename
// is tried first since most hosts replace atomically; when it fails and dst
// is present, dst is removed and the rename retried.
func Replace(fsys afero.Fs, src, dst string) error {
	err := fsys.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !Exists(fsys, dst) {
		return err
	}

	logger := logging.GetLogger("filesystem")
	logger.Debug().
		Err(err).
		Str("destination", dst).
		Msg("Rename did not replace destination, removing it first")

	if rmErr := fsys.Remove(dst); rmErr != nil {
		return rmErr
	}
	return fsys.Rename(src, dst)
}

// Exists reports whether path exists, following symlinks.
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is not a directory.
func IsFile(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(fsys afero.Fs, path string) bool {
	ok, err := afero.IsDir(fsys, path)
	return err == nil && ok
}
