package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch_NumericFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"field1": 751, "field2": 1501}`))
	}))
	defer srv.Close()

	reading, err := NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.ChannelA != 751 {
		t.Errorf("expected 751, got %f", reading.ChannelA)
	}
	if reading.ChannelB != 1501 {
		t.Errorf("expected 1501, got %f", reading.ChannelB)
	}
}

func TestFetch_QuotedFields(t *testing.T) {
	// some feeds quote their numbers
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"field1": "420", "field2": "980"}`))
	}))
	defer srv.Close()

	reading, err := NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.ChannelA != 420 || reading.ChannelB != 980 {
		t.Errorf("unexpected reading %+v", reading)
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFetch_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"field1": 100}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFetch_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	if _, err := NewClient(srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
