// Package dvw owns the scout-file model and code grammar.
//
// Ownership boundary:
// - play code parsing and minimal keys
// - file read/rewrite with newline preservation
// - [3SCOUT] section location
package dvw
