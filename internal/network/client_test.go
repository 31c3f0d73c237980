package network

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.userAgent != defaultUserAgent {
		t.Fatalf("userAgent = %q, want default", client.userAgent)
	}

	custom, err := NewClient(Options{Timeout: 5 * time.Second, UserAgent: " kazi-test "}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if custom.userAgent != "kazi-test" {
		t.Fatalf("userAgent = %q, want kazi-test", custom.userAgent)
	}
}
