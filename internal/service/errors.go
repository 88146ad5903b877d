package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalid              = errors.New("invalid")
	ErrRecognition          = errors.New("speech recognition failed")
	ErrSynthesisUnavailable = errors.New("speech synthesis unavailable")
)

// RecognitionError carries the recognizer's error code so the dialog can
// render the right retry prompt.
type RecognitionError struct {
	Code int
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("speech recognition failed (code %d)", e.Code)
}

func (e *RecognitionError) Is(target error) bool {
	return target == ErrRecognition
}
