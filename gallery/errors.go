package gallery

import "fmt"

// ValidationError is a local rejection; no store call was issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CascadeError reports a partially failed album delete: some photo deletes
// failed, so the album itself was left intact.
type CascadeError struct {
	AlbumID string
	Failed  int
	Err     error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("delete album %s: %d photo delete(s) failed, album kept: %v", e.AlbumID, e.Failed, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }
