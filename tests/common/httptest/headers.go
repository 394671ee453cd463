//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, w.Code, "Response: %s", w.Body.String())
	assert.Equal(t, location, w.Header().Get("Location"), "redirect target mismatch")
}

// AssertCookieCleared expects a Set-Cookie that expires the named cookie.
func AssertCookieCleared(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()
	c := ExtractCookie(w, name)
	if !assert.NotNil(t, c, "cookie %s was not set", name) {
		return
	}
	assert.Empty(t, c.Value, "cookie %s still has a value", name)
	assert.Less(t, c.MaxAge, 0, "cookie %s was not expired", name)
}
