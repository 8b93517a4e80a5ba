// Package testkit provides test doubles for the ShopEasy client, chiefly a
// mock HTTP transport so service tests never touch the network.
//
//	mt := testkit.NewMockTransport()
//	mt.Stub("POST", "/api/auth/login", 200, map[string]any{"token": "t1"})
//	defer mt.Install()()
//
//	// ... exercise a flow ...
//	assert.Equal(t, 1, mt.CallCount("POST", "/api/auth/login"))
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	gohttp "net/http"
	"strings"
	"sync"

	"github.com/shashiranjanraj/shopeasy/pkg/http"
)

// Call is one recorded outgoing request.
type Call struct {
	Method string
	Path   string
	Body   []byte
	Header gohttp.Header
}

type stub struct {
	method     string
	pathPrefix string
	status     int
	body       []byte
	err        error
}

// MockTransport implements http.RoundTripper. It matches outgoing requests
// against stubbed routes and returns synthetic responses; unmatched requests
// get a 404 so tests fail loudly instead of dialling out.
type MockTransport struct {
	mu    sync.Mutex
	stubs []stub
	calls []Call
}

// NewMockTransport returns an empty transport; add routes with Stub.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Stub registers a canned response for requests whose path starts with
// pathPrefix. body is marshalled to JSON; pass nil for an empty body.
func (mt *MockTransport) Stub(method, pathPrefix string, status int, body interface{}) {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, stub{method: method, pathPrefix: pathPrefix, status: status, body: raw})
}

// StubError makes matching requests fail at the transport level, simulating a
// network failure rather than a backend status.
func (mt *MockTransport) StubError(method, pathPrefix string, err error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, stub{method: method, pathPrefix: pathPrefix, err: err})
}

// Install swaps the shared client's transport for mt and returns the restore
// function. Defer it immediately:
//
//	defer mt.Install()()
func (mt *MockTransport) Install() func() {
	http.DefaultClient.Transport = mt
	return http.ResetTransport
}

// RoundTrip records the request and returns the first matching stub.
func (mt *MockTransport) RoundTrip(req *gohttp.Request) (*gohttp.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	mt.mu.Lock()
	mt.calls = append(mt.calls, Call{
		Method: req.Method,
		Path:   req.URL.Path,
		Body:   body,
		Header: req.Header.Clone(),
	})

	var matched *stub
	for i := range mt.stubs {
		s := &mt.stubs[i]
		if s.method == req.Method && strings.HasPrefix(req.URL.Path, s.pathPrefix) {
			matched = s
			break
		}
	}
	mt.mu.Unlock()

	if matched == nil {
		return synthetic(req, gohttp.StatusNotFound, []byte(`{"message":"no stub configured"}`)), nil
	}
	if matched.err != nil {
		return nil, matched.err
	}
	return synthetic(req, matched.status, matched.body), nil
}

// Calls returns the recorded requests matching method and pathPrefix.
// Empty method or prefix matches everything.
func (mt *MockTransport) Calls(method, pathPrefix string) []Call {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var out []Call
	for _, c := range mt.calls {
		if method != "" && c.Method != method {
			continue
		}
		if pathPrefix != "" && !strings.HasPrefix(c.Path, pathPrefix) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CallCount returns how many recorded requests match method and pathPrefix.
func (mt *MockTransport) CallCount(method, pathPrefix string) int {
	return len(mt.Calls(method, pathPrefix))
}

// TotalCalls returns how many requests went through the transport.
func (mt *MockTransport) TotalCalls() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return len(mt.calls)
}

func synthetic(req *gohttp.Request, status int, body []byte) *gohttp.Response {
	header := make(gohttp.Header)
	header.Set("Content-Type", "application/json")
	return &gohttp.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, gohttp.StatusText(status)),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Request:    req,
	}
}
