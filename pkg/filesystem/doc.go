// Package filesystem holds the filesystem plumbing behind renames.
//
// Everything takes an afero.Fs: the OS filesystem in production and a
// memory filesystem in tests. The package splits directory patterns,
// enumerates matching files and replaces files by rename.
package filesystem
