package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestIPLocatorSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","lat":60.1699,"lon":24.9384,"city":"Helsinki"}`))
	}))
	defer srv.Close()

	loc, err := NewIPLocator(srv.URL, zap.NewNop()).Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}
	if loc.Lat != 60.1699 || loc.Lon != 24.9384 {
		t.Fatalf("unexpected coordinate: %+v", loc)
	}
}

func TestIPLocatorFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	if _, err := NewIPLocator(srv.URL, zap.NewNop()).Locate(context.Background()); err == nil {
		t.Fatal("expected error for fail status")
	}
}

func TestIPLocatorHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewIPLocator(srv.URL, zap.NewNop()).Locate(context.Background()); err == nil {
		t.Fatal("expected error for 503")
	}
}
