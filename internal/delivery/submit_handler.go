package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"voicebank/internal/ports"
)

type SubmitHandler struct {
	ingest ports.Ingestor
	log    *logger.ZapLogger
}

func NewSubmitHandler(ingest ports.Ingestor, log *logger.ZapLogger) *SubmitHandler {
	return &SubmitHandler{
		ingest: ingest,
		log:    log,
	}
}

type submitRequest struct {
	Title       string    `json:"title"`
	Transcript  string    `json:"transcript"`
	Description string    `json:"description"`
	SampleRate  int       `json:"sampleRate"`
	Samples     []float64 `json:"samples"`
}

type submitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// POST /api/submissions
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.ingest.Submit(r.Context(), ports.SubmitRequest{
		Title:       req.Title,
		Transcript:  req.Transcript,
		Description: req.Description,
		Samples:     req.Samples,
		SampleRate:  req.SampleRate,
		Meta:        NewRequestMeta(r),
	})

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "submission handled",
		Fields: map[string]any{
			"status":  string(result.Status),
			"samples": len(req.Samples),
		},
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode(result.Status))
	_ = json.NewEncoder(w).Encode(submitResponse{
		Status:  string(result.Status),
		Message: result.Message,
		ID:      result.SubmissionID,
	})
}

func statusCode(status ports.SubmitStatus) int {
	switch status {
	case ports.StatusAccepted:
		return http.StatusCreated
	case ports.StatusDuplicate:
		// an expected outcome, not an error
		return http.StatusOK
	case ports.StatusInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
