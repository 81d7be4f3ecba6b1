// Package history persists completed stopwatch readings.
//
// The store is a single YAML file holding a flat sequence of HH:MM:SS
// strings in the order the runs finished:
//
//	- "00:00:05"
//	- "00:01:10"
//
// A missing file is an empty history. Entries are only ever appended, or the
// whole sequence is replaced with an empty one by Clear.
//
// Every operation opens, fully reads or fully writes, and closes the file.
// There is no locking; two processes writing the same file race and the last
// writer wins.
package history
