package ignore

import "fmt"

// CanonicalizeError reports a path the filesystem could not resolve to its
// canonical absolute form (missing, permission denied, symlink loop). Err
// holds the underlying I/O cause.
type CanonicalizeError struct {
	Path string
	Err  error
}

func (e *CanonicalizeError) Error() string {
	return fmt.Sprintf("canonicalize %q: %v", e.Path, e.Err)
}

func (e *CanonicalizeError) Unwrap() error { return e.Err }

// UnknownPathTypeError reports a path that exists but is neither a regular
// file nor a directory, so no path-based rule kind applies to it.
type UnknownPathTypeError struct {
	Path string
}

func (e *UnknownPathTypeError) Error() string {
	return fmt.Sprintf("unknown path type: %q is neither a regular file nor a directory", e.Path)
}
