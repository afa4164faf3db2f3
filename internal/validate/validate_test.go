package validate

import (
	"strings"
	"testing"
)

func TestSignUpForm(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		email    string
		valid    bool
	}{
		{"valid", "alice", "pw123", "alice@x.com", true},
		{"empty username", "", "pw123", "alice@x.com", false},
		{"long username", strings.Repeat("a", MaxUsernameLen+1), "pw123", "alice@x.com", false},
		{"bad email", "alice", "pw123", "alice", false},
		{"empty password", "alice", "", "alice@x.com", false},
		{"long password", "alice", strings.Repeat("p", MaxPasswordLen+1), "alice@x.com", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := SignUpForm(c.username, c.password, c.email)
			if c.valid && err != nil {
				t.Errorf("unexpected error: %s", err)
			}
			if !c.valid && err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMessages(t *testing.T) {
	err := SignUpForm("", "pw123", "nope")
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "empty username") || !strings.Contains(msg, "invalid email") {
		t.Errorf("unexpected message %q", msg)
	}

	if err = Password(""); err == nil || err.Error() != "empty password" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestComment(t *testing.T) {
	if err := Comment("  "); err == nil {
		t.Error("blank comment accepted")
	}
	if err := Comment(strings.Repeat("c", MaxCommentLen+1)); err == nil {
		t.Error("long comment accepted")
	}
	if err := Comment("nice!"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestPostAndProfile(t *testing.T) {
	if err := Post("", "World"); err == nil {
		t.Error("post without title accepted")
	}
	if err := Post("Hello", "World"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if err := Profile("alice", strings.Repeat("b", MaxBioLen+1)); err == nil {
		t.Error("long bio accepted")
	}
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestImage(t *testing.T) {
	cases := []struct {
		name     string
		content  []byte
		expected string
		valid    bool
	}{
		{"png", pngHeader, "image/png", true},
		{"jpeg", []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), "image/jpeg", true},
		{"text", []byte("hello world"), "", false},
		{"empty", nil, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mimeType, err := Image(c.content)
			if c.valid != (err == nil) {
				t.Fatalf("unexpected result: %v", err)
			}
			if mimeType != c.expected {
				t.Errorf("expected %q, got %q", c.expected, mimeType)
			}
		})
	}
}
