package scan

import "fmt"

// ErrorKind is the stable category tag carried by a ScanError.
type ErrorKind string

const (
	// KindDirectoryNotFound: the root path does not resolve to an existing
	// directory. Reported once per invocation, before any records.
	KindDirectoryNotFound ErrorKind = "DirectoryNotFound"

	// KindEnumerationFailure: the traversal itself failed. Records emitted
	// before the failure remain delivered.
	KindEnumerationFailure ErrorKind = "EnumerationFailure"
)

var (
	ErrDirectoryNotFound  = &ScanError{Kind: KindDirectoryNotFound}
	ErrEnumerationFailure = &ScanError{Kind: KindEnumerationFailure}
)

// ScanError is the single fatal error a scan can surface. Per-entry
// metadata failures are never wrapped in a ScanError; they degrade to
// warnings on the diagnostics channel.
type ScanError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	switch {
	case e.Kind == KindDirectoryNotFound:
		return fmt.Sprintf("Directory not found: %s", e.Path)
	case e.Err != nil:
		return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("scan %s: %s", e.Path, e.Kind)
	}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Is(target error) bool {
	if targetErr, ok := target.(*ScanError); ok {
		return e.Kind == targetErr.Kind
	}
	return false
}
