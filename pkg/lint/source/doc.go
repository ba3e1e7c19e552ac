// Package source turns env files on disk into line entries and lints them.
//
// Discover expands the paths given on the command line into the list of env
// files to lint. ReadLines splits one file into lint.LineEntry values. Runner
// lints many files in parallel; each file gets its own dispatcher run, so no
// state is shared between files.
package source
