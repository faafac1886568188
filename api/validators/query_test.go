package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
)

func TestParseQueryIntLenient(t *testing.T) {
	req := httptest.NewRequest("GET", "/?page=3&pageSize=abc", nil)

	if got := ParseQueryIntLenient(req, "page", 1); got != 3 {
		t.Fatalf("expected 3 got %d", got)
	}
	if got := ParseQueryIntLenient(req, "pageSize", 10); got != 10 {
		t.Fatalf("expected fallback 10 got %d", got)
	}
	if got := ParseQueryIntLenient(req, "missing", 7); got != 7 {
		t.Fatalf("expected default 7 got %d", got)
	}
}

func TestParsePathID(t *testing.T) {
	if id, err := ParsePathID("42", "Invalid store id."); err != nil || id != 42 {
		t.Fatalf("expected 42 got %d err %v", id, err)
	}

	for _, raw := range []string{"", "abc", "0", "-5"} {
		_, err := ParsePathID(raw, "Invalid store id.")
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %q got %v", raw, err)
		}
		if typed.Message() != "Invalid store id." {
			t.Fatalf("unexpected message %q", typed.Message())
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  padded  ", 0); got != "padded" {
		t.Fatalf("expected trim got %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("expected truncation got %q", got)
	}
}
