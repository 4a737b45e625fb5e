// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"
	"path/filepath"
)

// imageUpload is a fully read multipart image ready for storage.
type imageUpload struct {
	data        []byte
	contentType string
	ext         string
}

// readImageUpload extracts and validates the "file" part of a multipart
// request. It writes the error response itself and returns ok=false when
// the upload is rejected.
func readImageUpload(w http.ResponseWriter, r *http.Request) (imageUpload, bool) {
	var up imageUpload

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, "file too large (max 10 MB)", http.StatusRequestEntityTooLarge)
		return up, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "image file is required", http.StatusBadRequest)
		return up, false
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, "file too large (max 10 MB)", http.StatusRequestEntityTooLarge)
		return up, false
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, "failed to read file", http.StatusInternalServerError)
		return up, false
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if !allowedImageTypes[contentType] {
		writeError(w, "only JPEG, PNG, GIF and WebP images are allowed", http.StatusBadRequest)
		return up, false
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, "failed to process file", http.StatusInternalServerError)
		return up, false
	}
	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "failed to read file", http.StatusInternalServerError)
		return up, false
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}

	up = imageUpload{data: data, contentType: contentType, ext: ext}
	return up, true
}

// extensionFromType returns a file extension for known image MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
