package postback

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	h := NewHandler(nil, "s3cret", []string{"127.0.0.1/32"})

	tests := []struct {
		name       string
		method     string
		secret     string
		remoteAddr string
		want       bool
		wantStatus int
	}{
		{"valid request", "POST", "s3cret", "127.0.0.1:54321", true, 200},
		{"wrong method", "GET", "s3cret", "127.0.0.1:54321", false, 405},
		{"missing secret", "POST", "", "127.0.0.1:54321", false, 403},
		{"wrong secret", "POST", "nope", "127.0.0.1:54321", false, 403},
		{"disallowed ip", "POST", "s3cret", "192.168.1.5:54321", false, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, "/postback/adview", strings.NewReader("{}"))
			r.RemoteAddr = tt.remoteAddr
			if tt.secret != "" {
				r.Header.Set("X-Postback-Secret", tt.secret)
			}
			w := httptest.NewRecorder()

			got := h.authorize(w, r)
			assert.Equal(t, tt.want, got)
			if !tt.want {
				assert.Equal(t, tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAuthorizeNoRestrictions(t *testing.T) {
	h := NewHandler(nil, "", nil)

	r := httptest.NewRequest("POST", "/postback/adview", strings.NewReader("{}"))
	r.RemoteAddr = "203.0.113.9:1234"
	w := httptest.NewRecorder()

	assert.True(t, h.authorize(w, r))
}
