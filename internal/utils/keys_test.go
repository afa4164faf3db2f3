package utils

import (
	"strings"
	"testing"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

func TestNewStorageKey(t *testing.T) {
	k1 := NewStorageKey(domain.MimePNG)
	k2 := NewStorageKey(domain.MimePNG)
	if k1 == k2 {
		t.Error("keys are not unique")
	}
	if !strings.HasSuffix(k1, ".png") {
		t.Errorf("expected .png extension, got %q", k1)
	}
	if strings.ContainsAny(k1, `/\`) {
		t.Errorf("key %q contains a path separator", k1)
	}
	if k := NewStorageKey(domain.MimeJPEG); !strings.HasSuffix(k, ".jpg") {
		t.Errorf("expected .jpg extension, got %q", k)
	}
}

func TestCollapseSpaces(t *testing.T) {
	cases := map[string]string{
		"  Hello   world ": "Hello world",
		"a\t\tb":           "a b",
		"":                 "",
	}
	for in, want := range cases {
		if got := CollapseSpaces(in); got != want {
			t.Errorf("CollapseSpaces(%q) = %q, want %q", in, got, want)
		}
	}
}
