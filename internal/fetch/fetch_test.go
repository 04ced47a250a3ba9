package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bread.png" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("raw-bytes"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(0)

	data, err := f.Fetch(srv.URL + "/bread.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "raw-bytes" {
		t.Errorf("expected raw-bytes, got %q", data)
	}

	if _, err := f.Fetch(srv.URL + "/missing.png"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestFetch_RelativeURL(t *testing.T) {
	if _, err := NewHTTPFetcher(0).Fetch("/assets/bread.png"); err == nil {
		t.Error("expected error for relative URL")
	}
}
