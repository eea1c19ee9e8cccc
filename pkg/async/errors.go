package async

import "errors"

var (
	ErrTimeout       = errors.New("async: timed out waiting for future")
	ErrNotStarted    = errors.New("async: context cancelled before the task started")
	ErrWaitCancelled = errors.New("async: wait cancelled")
)
