package client

import (
	"net/http/httptest"
	"sync"

	"github.com/petfinder-community/petfinder-go/internal/auth"
	internalhttp "github.com/petfinder-community/petfinder-go/internal/http"
	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// newTestClient builds a resource client set against a test server.
func newTestClient(server *httptest.Server) *Client {
	httpClient := internalhttp.NewClient(server.URL, &auth.StaticTokenManager{Token: "test-token"})

	return New(httpClient, nil)
}

// recordingLogger captures warning messages for assertions.
type recordingLogger struct {
	petfinder.NoopLogger

	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}
