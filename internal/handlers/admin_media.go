// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"royalsite/internal/imaging"
	"royalsite/internal/storage"
)

// maxUploadSize is the maximum allowed photo upload size (20 MB).
const maxUploadSize = 20 << 20

// allowedPhotoTypes defines MIME types accepted for upload. Everything on
// the site is a photo or a logo, so only raster image types are allowed.
var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// uploadPrefixes maps the upload target to the storage key prefix.
// The prefix groups objects by what they illustrate.
var uploadPrefixes = map[string]string{
	"services":       "services",
	"projects":       "projects",
	"team":           "team",
	"testimonials":   "testimonials",
	"certifications": "certifications",
	"company":        "company",
}

// Media handles photo uploads for the admin API. Originals are stored
// as-is; responsive WebP variants are generated alongside them.
type Media struct {
	storage *storage.Client
}

// NewMedia creates the media handler. storage may be nil when S3 is not
// configured, in which case uploads answer 503.
func NewMedia(storageClient *storage.Client) *Media {
	return &Media{storage: storageClient}
}

// Upload stores a photo and its responsive variants, returning the public
// URL to save on the entity. The prefix form field selects the key group.
func (m *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if m.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 20 MB")
		return
	}

	prefix, ok := uploadPrefixes[r.FormValue("prefix")]
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown upload prefix")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respondError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 20 MB")
		return
	}

	// Detect content type by sniffing rather than trusting the header.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		respondError(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if !allowedPhotoTypes[contentType] {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("file type %q is not allowed", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to process file")
		return
	}
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	key := storage.ObjectKey(prefix, header.Filename)

	ctx := r.Context()
	if err := m.storage.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "failed to upload file")
		return
	}

	// Responsive variants are best-effort: the original is already up, so
	// a vips failure only costs the srcset.
	variantURLs := map[string]string{}
	processed, err := imaging.GenerateVariants(fileBytes, imaging.DefaultVariants)
	if err != nil {
		slog.Warn("variant generation failed", "error", err, "key", key)
	}
	for _, p := range processed {
		vk := imaging.VariantKey(key, p.Name)
		if err := m.storage.Upload(ctx, vk, p.ContentType, bytes.NewReader(p.Data), int64(len(p.Data))); err != nil {
			slog.Warn("variant upload failed", "error", err, "key", vk)
			continue
		}
		variantURLs[p.Name] = m.storage.FileURL(vk)
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"url":      m.storage.FileURL(key),
		"key":      key,
		"variants": variantURLs,
		"size":     len(fileBytes),
		"type":     contentType,
	})
}

// Delete removes an uploaded photo and its variants. The body carries the
// public URL previously returned by Upload.
func (m *Media) Delete(w http.ResponseWriter, r *http.Request) {
	if m.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	var in struct {
		URL string `json:"url"`
	}
	if !readJSON(w, r, &in) {
		return
	}

	key, ok := m.storage.ExtractKey(in.URL)
	if !ok {
		respondError(w, http.StatusBadRequest, "url does not belong to this site's storage")
		return
	}

	ctx := r.Context()
	if err := m.storage.Delete(ctx, key); err != nil {
		slog.Error("s3 delete failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "failed to delete file")
		return
	}

	// Variants share the original's key stem; clean them up best-effort.
	for _, v := range imaging.DefaultVariants {
		vk := imaging.VariantKey(key, v.Name)
		if err := m.storage.Delete(ctx, vk); err != nil {
			slog.Warn("variant delete failed", "error", err, "key", vk)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
