package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/txtnovel/internal/novel"
	"github.com/dgallion1/txtnovel/internal/parser"
)

const defaultUploadName = "upload.txt"

// handleParse parses one manuscript inline and returns the Novel. It accepts
// a multipart "file" field or the raw bytes as the request body.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	filename, data, status, err := s.readParseUpload(r)
	if err != nil {
		jsonError(w, err.Error(), status)
		return
	}

	p, err := parser.ForFile(filename, s.options)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	n, err := p.Parse(bytes.NewReader(data), filename)
	elapsed := time.Since(start)
	if err != nil {
		s.log.Error("parse failed", "filename", filename, "error", err)
		jsonError(w, "parse failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if s.stats != nil {
		s.stats.Record(elapsed, len(data))
	}

	hash := novel.ContentHash(data)
	charset := parser.SourceCharset(filename, data)
	s.log.Info("parsed manuscript",
		"filename", filename,
		"doc_id", hash[:16],
		"charset", charset,
		"chapters", len(n.Chapters),
		"duration_ms", elapsed.Milliseconds(),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":       hash[:16],
		"content_hash": hash,
		"filename":     filename,
		"charset":      charset,
		"novel":        n,
	})
}

// readParseUpload returns the upload name and bytes, or an error with the
// HTTP status to report.
func (s *Server) readParseUpload(r *http.Request) (string, []byte, int, error) {
	var (
		filename string
		src      io.Reader
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return "", nil, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err)
		}
		defer r.MultipartForm.RemoveAll()
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, http.StatusBadRequest, fmt.Errorf("file is required: %w", err)
		}
		defer file.Close()
		filename = header.Filename
		src = file
	} else {
		filename = r.URL.Query().Get("filename")
		src = r.Body
	}
	if filename == "" {
		filename = defaultUploadName
	}
	filename = sanitizeFilename(filename)
	if !parser.IsSupportedExtension(filename) {
		return "", nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(src, s.cfg.MaxUploadBytes+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, http.StatusRequestEntityTooLarge, fmt.Errorf("request exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
		}
		return "", nil, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}
	return filename, data, http.StatusOK, nil
}
