package credentials

import (
	"strings"
	"testing"
)

func TestSuggestUsername(t *testing.T) {
	for i := 0; i < 100; i++ {
		name, err := SuggestUsername()
		if err != nil {
			t.Fatalf("SuggestUsername failed: %v", err)
		}
		parts := strings.Split(name, "-")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			t.Fatalf("suggestion %q is not adjective-noun", name)
		}
	}
}

func TestSuggestUsernamesAreDistinct(t *testing.T) {
	names, err := SuggestUsernames(3)
	if err != nil {
		t.Fatalf("SuggestUsernames failed: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(names))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate suggestion %q", n)
		}
		seen[n] = true
	}
}
