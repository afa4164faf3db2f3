package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

// GetFile serves an uploaded asset from the asset store.
func GetFile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		file, meta, err := h.service.OpenFile(r.Context(), key)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", meta.MimeType)
		w.Header().Set("Content-Length", strconv.Itoa(len(file)))
		// Keys are never reused, so the content of a key never changes.
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.Write(file)
	}
}

// parseForm parses a form that may carry files, bounding the size of the body.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.Config.MaxUploadBytes)
	err := r.ParseMultipartForm(MaxMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

// readUploads reads the files sent in field. File inputs left empty are skipped.
func readUploads(r *http.Request, field string) ([]domain.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var uploads []domain.Upload
	for _, header := range r.MultipartForm.File[field] {
		if header.Filename == "" {
			continue
		}

		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, domain.Upload{
			Filename: header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Content:  content,
		})
	}
	return uploads, nil
}
