package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"

	"voicebank/internal/domain/stations"
	"voicebank/internal/models"
	"voicebank/internal/ports"
)

type IngestService struct {
	repo ports.SubmissionRepository

	s1 *stations.S1EncodeWAV
	s2 *stations.S2Fingerprint
	s3 *stations.S3Provenance

	log    *logger.ZapLogger
	events chan ports.SubmissionEvent
}

func NewIngestService(
	repo ports.SubmissionRepository,
	s1 *stations.S1EncodeWAV,
	s2 *stations.S2Fingerprint,
	s3 *stations.S3Provenance,
	zl *logger.ZapLogger,
) *IngestService {
	return &IngestService{
		repo:   repo,
		s1:     s1,
		s2:     s2,
		s3:     s3,
		log:    zl,
		events: make(chan ports.SubmissionEvent, 100),
	}
}

func (s *IngestService) Events() <-chan ports.SubmissionEvent { return s.events }

// Submit runs one submission through validate → encode → fingerprint →
// provenance → store. The service keeps no state between calls; concurrency
// safety of the dedup check lives in the repository's transaction.
func (s *IngestService) Submit(ctx context.Context, req ports.SubmitRequest) ports.SubmitResult {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ports.SubmitResult{
			Status:  ports.StatusInvalid,
			Message: "title is required",
		}
	}

	wav, err := s.s1.Run(req.Samples, req.SampleRate)
	if err != nil {
		return ports.SubmitResult{
			Status:  ports.StatusInvalid,
			Message: validationMessage(err),
		}
	}

	hash := s.s2.Run(wav)
	prov := s.s3.Run(req.Meta)

	sub := &models.AudioSubmission{
		Title:        title,
		EncodedAudio: wav,
		ContentHash:  hash,
		Transcript:   optional(req.Transcript),
		Description:  optional(req.Description),
		SampleRate:   req.SampleRate,
	}

	if err := s.repo.TryInsert(ctx, sub, &prov); err != nil {
		if errors.Is(err, ports.ErrDuplicateContent) {
			s.log.Log(logger.LogEntry{
				Level:   "info",
				Message: "duplicate submission rejected",
				Fields:  map[string]any{"contentHash": hash},
			})
			return ports.SubmitResult{
				Status:  ports.StatusDuplicate,
				Message: "this audio was already submitted; nothing new was saved",
			}
		}

		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "submission store failed",
			Error:   err,
			Fields:  map[string]any{"contentHash": hash},
		})
		return ports.SubmitResult{
			Status:  ports.StatusStorageFailed,
			Message: "could not save the submission: " + causeSummary(err),
		}
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "submission accepted",
		Fields: map[string]any{
			"submissionID": sub.ID,
			"contentHash":  hash,
			"sampleRate":   sub.SampleRate,
			"bytes":        len(wav),
		},
	})

	select {
	case s.events <- ports.SubmissionEvent{
		SubmissionID: sub.ID,
		Title:        sub.Title,
		ContentHash:  hash,
		SampleRate:   sub.SampleRate,
	}:
	default:
		// feed listeners lagging; the feed is advisory, never block ingest
	}

	return ports.SubmitResult{
		Status:       ports.StatusAccepted,
		Message:      fmt.Sprintf("submission saved, received from %s", ipOrUnknown(prov.IPAddress)),
		SubmissionID: sub.ID,
	}
}

func validationMessage(err error) string {
	if errors.Is(err, ports.ErrAudioTooLarge) {
		return "audio is too large"
	}
	return "audio is missing or not valid sound data"
}

// causeSummary keeps operator diagnostics without dumping a full error chain
// at the submitter.
func causeSummary(err error) string {
	msg := err.Error()
	if len(msg) > 140 {
		msg = msg[:140] + "…"
	}
	return msg
}

func ipOrUnknown(ip *string) string {
	if ip == nil || *ip == "" {
		return "unknown"
	}
	return *ip
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
