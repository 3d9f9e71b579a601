package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPUsesRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("client ip = %q, want 203.0.113.7", got)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:80"
	req.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")
	if got := ClientIP(req); got != "198.51.100.9" {
		t.Fatalf("client ip = %q, want 198.51.100.9", got)
	}
}

func TestClientIPIgnoresGarbageForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set("X-Forwarded-For", "not-an-ip")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("client ip = %q, want fallback to remote addr", got)
	}
}
