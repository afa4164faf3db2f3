package filestore

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/storage"
)

var store storage.Storage
var path string
var ctx = context.Background()

func TestMain(m *testing.M) {
	var err error
	path, err = os.MkdirTemp(".", "tempdir")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
		return
	}

	base, _ := url.Parse("http://localhost:8080/f")
	store = &FileStore{
		Root:    path,
		BaseUrl: base,
	}

	code := m.Run()
	if err = os.RemoveAll(path); err != nil {
		log.Fatal().Err(err).Msg("removal of temporary directory failed")
	}
	os.Exit(code)
}

func TestCreate(t *testing.T) {
	cases := []struct {
		Casename string
		Path     string
		Content  string
		Err      error
	}{
		{"create file", "f1.txt", "hello, world!", nil},
		{"create duplicate file", "f1.txt", "hello, world!", storage.ErrAlreadyExists},
		{"escape root", "../f2.txt", "hello, world!", storage.ErrCreate},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			u, err := store.Create(ctx, strings.NewReader(c.Content), c.Path, "text/plain")
			if err != nil {
				if c.Err == nil {
					t.Error("unexpected error:", err)
				} else if !errors.Is(err, c.Err) {
					t.Errorf("unexpected error type.\nexpected: %s\ngot: %s\n", c.Err, err)
				}
				return
			}

			if expected := "http://localhost:8080/f/" + c.Path; u.String() != expected {
				t.Errorf("expected url %s, got %s", expected, u)
			}

			f, err := os.Open(filepath.Join(path, c.Path))
			if err != nil {
				t.Errorf("failed to open file: %s", err)
				return
			}
			defer f.Close()

			content, err := io.ReadAll(f)
			if err != nil {
				t.Errorf("unexpected error: %s", err)
			}

			if string(content) != c.Content {
				t.Errorf("expected \"%s\", got \"%s\"", c.Content, content)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	name := "readable"
	if err := os.WriteFile(filepath.Join(path, name), []byte("content"), 0o644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	content, err := store.Open(ctx, name)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(content) != "content" {
		t.Errorf("expected \"content\", got \"%s\"", content)
	}

	if _, err = store.Open(ctx, "missing"); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected %s, got %v", storage.ErrNotExist, err)
	}
}

func TestDelete(t *testing.T) {
	name := "moribundus"
	newpath := filepath.Join(path, name)
	f, err := os.Create(newpath)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f.Close()

	err = store.Delete(ctx, name)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	name = "none"
	err = store.Delete(ctx, name)
	if err == nil || !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, storage.ErrNotExist)
	}
}
