// Package scaffold drives a single generation run. It powers the root
// command, executing four phases in order: collect the requested modules,
// write them to the target directory, build and write the optional populated
// assembly, and validate the requested file names. Phases never repeat and
// the first failure aborts the run; already-written files are not rolled
// back.
package scaffold
