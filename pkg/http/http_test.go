package http_test

import (
	"encoding/json"
	gohttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/shopeasy/pkg/http"
)

func TestRequestCarriesHeadersAndBody(t *testing.T) {
	var got struct {
		method    string
		path      string
		auth      string
		requestID string
		body      map[string]string
	}

	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		got.requestID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&got.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	resp, err := http.Post(srv.URL + "/api/things").
		Bearer("t1").
		Body(map[string]string{"name": "mug"}).
		Send()
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.method != "POST" || got.path != "/api/things" {
		t.Errorf("server saw %s %s", got.method, got.path)
	}
	if got.auth != "Bearer t1" {
		t.Errorf("Authorization = %q", got.auth)
	}
	if got.requestID == "" {
		t.Error("every request must carry a correlation ID")
	}
	if got.body["name"] != "mug" {
		t.Errorf("body = %v", got.body)
	}
	if !resp.OK() || resp.StatusCode != 201 {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestResponseHelpers(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		w.WriteHeader(422)
		_, _ = w.Write([]byte(`{"message":"stock exhausted"}`))
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/products/1").Send()
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if resp.OK() {
		t.Error("422 must not be OK")
	}
	if got := resp.Message("fallback"); got != "stock exhausted" {
		t.Errorf("Message = %q", got)
	}
	if got := resp.Text(); got != `{"message":"stock exhausted"}` {
		t.Errorf("Text = %q", got)
	}
}

func TestMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		w.WriteHeader(500)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/boom").Send()
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := resp.Message("Something failed"); got != "Something failed" {
		t.Errorf("Message = %q", got)
	}
}
