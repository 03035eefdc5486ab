package ports

import "errors"

// ErrDuplicateContent is returned by SubmissionRepository.TryInsert when a
// submission with the same content hash already exists. It is an expected
// outcome, not a storage fault.
var ErrDuplicateContent = errors.New("duplicate content")

// ErrInvalidAudio covers an empty buffer, a non-finite sample or a
// non-positive sample rate.
var ErrInvalidAudio = errors.New("invalid audio input")

// ErrAudioTooLarge means the encoded payload would exceed the configured cap.
var ErrAudioTooLarge = errors.New("audio too large")
