// Package naming computes timestamp-derived file names.
//
// A new name is the prefix template (with every "*" replaced by the
// original base name) followed directly by the current local time as
// yyyyMMdd_HHmmss_fff. Directory and extension are kept:
//
//	data/myfile.txt + "MyPrefix_*_" at 2002-02-28 13:42:28.623
//	  -> data/MyPrefix_myfile_20020228_134228_623.txt
//
// Two calls inside the same millisecond yield the same name; callers
// renaming several files must space the calls out.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Wildcard in a prefix template stands for the original base name.
const Wildcard = "*"

// MinInterval is the shortest gap between two generated names that keeps
// them distinct at millisecond resolution, with some slack for clock jitter.
const MinInterval = 3 * time.Millisecond

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Generator builds new names from a clock reading.
type Generator struct {
	Clock Clock
}

// NewGenerator returns a Generator on the system clock.
func NewGenerator() *Generator {
	return &Generator{Clock: SystemClock{}}
}

// ComputeNewName returns the path originalPath should be renamed to.
func (g *Generator) ComputeNewName(originalPath, prefixTemplate string) string {
	dir, base, ext := SplitName(originalPath)
	return dir + ResolvePrefix(prefixTemplate, base) + FormatTimestamp(g.now()) + ext
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}

// SplitName splits a path into its directory, base name without extension
// and extension. The extension starts at the last dot, so ".bashrc" has an
// empty base. dir keeps its trailing separator and is empty when the path
// has no directory part.
func SplitName(path string) (dir, base, ext string) {
	dir, file := filepath.Split(path)
	ext = filepath.Ext(file)
	return dir, strings.TrimSuffix(file, ext), ext
}

// ResolvePrefix replaces every wildcard in template with base.
func ResolvePrefix(template, base string) string {
	if !strings.Contains(template, Wildcard) {
		return template
	}
	return strings.ReplaceAll(template, Wildcard, base)
}

// FormatTimestamp renders t in local time as yyyyMMdd_HHmmss_fff.
func FormatTimestamp(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%s_%03d", t.Format("20060102_150405"), t.Nanosecond()/int(time.Millisecond))
}
