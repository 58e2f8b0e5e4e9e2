// Package filesystem provides implementations of the types.FS interface.
//
// NewOS returns the production filesystem. Writes go through an atomic
// temp-file-and-rename so a failed save never leaves a truncated config
// file behind. NewMemory returns an in-memory filesystem for tests, with
// optional error injection per path.
package filesystem
