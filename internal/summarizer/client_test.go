package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSummarize_SendsPayloadAndParsesSummary(t *testing.T) {
	var got summaryRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(summaryResponse{Summary: "quiet month"})
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", 5*time.Second)

	summary, err := client.Summarize(context.Background(), "Helena Souza", "2024-01", 180, "no occurrences")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary != "quiet month" {
		t.Errorf("Summarize() = %q, want %q", summary, "quiet month")
	}
	if got.PatientName != "Helena Souza" || got.Month != "2024-01" || got.HoursWorked != 180 {
		t.Errorf("request payload = %+v", got)
	}
}

func TestSummarize_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, "", 5*time.Second)

	if _, err := client.Summarize(context.Background(), "x", "2024-01", 0, ""); err == nil {
		t.Fatal("Summarize() error = nil, want failure on 502")
	}
}

func TestSummarize_DisabledWithoutURL(t *testing.T) {
	client := New("", "", 5*time.Second)

	_, err := client.Summarize(context.Background(), "x", "2024-01", 0, "")
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Summarize() error = %v, want ErrDisabled", err)
	}
}
