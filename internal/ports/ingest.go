package ports

import "context"

type SubmitStatus string

const (
	StatusAccepted      SubmitStatus = "accepted"
	StatusDuplicate     SubmitStatus = "duplicate"
	StatusInvalid       SubmitStatus = "invalid"
	StatusStorageFailed SubmitStatus = "storage_failed"
)

type SubmitRequest struct {
	Title       string
	Transcript  string
	Description string
	Samples     []float64
	SampleRate  int
	Meta        RequestMeta
}

type SubmitResult struct {
	Status       SubmitStatus
	Message      string // shown to the submitter verbatim
	SubmissionID int64  // set when Status == StatusAccepted
}

type SubmissionEvent struct {
	SubmissionID int64
	Title        string
	ContentHash  string
	SampleRate   int
}

type Ingestor interface {
	Submit(ctx context.Context, req SubmitRequest) SubmitResult
	Events() <-chan SubmissionEvent
}
