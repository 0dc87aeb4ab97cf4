package httpclient

import (
	"net/url"
	"strings"
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	u, err := url.Parse("https://example.org/archive/json/?api_key=secret123&start=0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	got := sanitizeURL(u)

	if strings.Contains(got, "secret123") {
		t.Errorf("secret leaked: %s", got)
	}
	if !strings.Contains(got, "%5BREDACTED%5D") && !strings.Contains(got, "[REDACTED]") {
		t.Errorf("expected redaction marker: %s", got)
	}
	if !strings.Contains(got, "start=0") {
		t.Errorf("benign parameter dropped: %s", got)
	}
}

func TestSanitizeURL_Nil(t *testing.T) {
	if got := sanitizeURL(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestIsSensitiveParam(t *testing.T) {
	tests := []struct {
		param string
		want  bool
	}{
		{"api_key", true},
		{"API_KEY", true},
		{"access_token", true},
		{"password", true},
		{"start", false},
		{"detector", false},
	}

	for _, tt := range tests {
		if got := isSensitiveParam(tt.param); got != tt.want {
			t.Errorf("isSensitiveParam(%q) = %v, want %v", tt.param, got, tt.want)
		}
	}
}
