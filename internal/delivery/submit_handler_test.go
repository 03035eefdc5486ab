package delivery_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"go.uber.org/zap"

	"voicebank/internal/delivery"
	"voicebank/internal/ports"
)

type stubIngestor struct {
	result  ports.SubmitResult
	lastReq ports.SubmitRequest
	calls   int
}

func (s *stubIngestor) Submit(ctx context.Context, req ports.SubmitRequest) ports.SubmitResult {
	s.calls++
	s.lastReq = req
	return s.result
}

func (s *stubIngestor) Events() <-chan ports.SubmissionEvent { return nil }

func newHandler(result ports.SubmitResult) (*delivery.SubmitHandler, *stubIngestor) {
	ing := &stubIngestor{result: result}
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	return delivery.NewSubmitHandler(ing, zl), ing
}

func postJSON(t *testing.T, h *delivery.SubmitHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.7:51000"
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestSubmitHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		status ports.SubmitStatus
		code   int
	}{
		{ports.StatusAccepted, http.StatusCreated},
		{ports.StatusDuplicate, http.StatusOK},
		{ports.StatusInvalid, http.StatusBadRequest},
		{ports.StatusStorageFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			h, _ := newHandler(ports.SubmitResult{Status: tc.status, Message: "msg"})
			rec := postJSON(t, h, `{"title":"Greeting","sampleRate":16000,"samples":[0,0.1]}`)

			if rec.Code != tc.code {
				t.Fatalf("code = %d, want %d", rec.Code, tc.code)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad response json: %v", err)
			}
			if resp["status"] != string(tc.status) || resp["message"] != "msg" {
				t.Fatalf("unexpected body %v", resp)
			}
		})
	}
}

func TestSubmitHandlerPassesRequestThrough(t *testing.T) {
	h, ing := newHandler(ports.SubmitResult{Status: ports.StatusAccepted, Message: "ok", SubmissionID: 7})

	rec := postJSON(t, h, `{"title":"Greeting","transcript":"hi","description":"test","sampleRate":16000,"samples":[0,0.5,-0.5]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d", rec.Code)
	}

	got := ing.lastReq
	if got.Title != "Greeting" || got.Transcript != "hi" || got.Description != "test" {
		t.Fatalf("text fields lost: %+v", got)
	}
	if got.SampleRate != 16000 || len(got.Samples) != 3 {
		t.Fatalf("audio fields lost: rate=%d samples=%d", got.SampleRate, len(got.Samples))
	}
	if got.Meta == nil {
		t.Fatal("request meta missing")
	}
	if got.Meta.RemoteAddr() != "192.0.2.7:51000" {
		t.Fatalf("remote addr = %q", got.Meta.RemoteAddr())
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["id"] != float64(7) {
		t.Fatalf("id in body = %v, want 7", resp["id"])
	}
}

func TestSubmitHandlerRejectsBadJSON(t *testing.T) {
	h, ing := newHandler(ports.SubmitResult{Status: ports.StatusAccepted})

	rec := postJSON(t, h, `{"title":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if ing.calls != 0 {
		t.Fatal("ingestor called for malformed json")
	}
}

func TestRequestMetaHeaderLookup(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader(nil))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("User-Agent", "curl/8.5.0")
	req.RemoteAddr = "10.1.2.3:9999"

	meta := delivery.NewRequestMeta(req)

	// lookup is case-insensitive
	if meta.Header("x-forwarded-for") != "203.0.113.9" {
		t.Fatal("forwarded header lookup failed")
	}
	if meta.Header("USER-AGENT") != "curl/8.5.0" {
		t.Fatal("user-agent lookup failed")
	}
	if meta.Header("Authorization") != "" {
		t.Fatal("absent header should be empty")
	}
	if meta.RemoteAddr() != "10.1.2.3:9999" {
		t.Fatal("remote addr mismatch")
	}
}
