package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartImage(t *testing.T, kind string, content []byte) (string, *bytes.Buffer) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if kind != "" {
		require.NoError(t, mw.WriteField("kind", kind))
	}
	if content != nil {
		part, err := mw.CreateFormFile("file", "photo.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return mw.FormDataContentType(), body
}

func TestUploadImage(t *testing.T) {
	env := newAPIEnv(t)
	token := env.login(t, env.store.SeedUser(t, "rana", models.UserTypeIndividual))

	contentType, body := multipartImage(t, "avatar", pngHeader)
	w := env.request(t, http.MethodPost, "/api/uploads", token, contentType, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.UploadResponse
	decode(t, w, &resp)
	assert.Equal(t, "avatar", resp.Kind)
	require.True(t, strings.HasPrefix(resp.URL, "http://localhost:8080/uploads/avatars/"), resp.URL)
	assert.True(t, strings.HasSuffix(resp.URL, ".png"), resp.URL)

	stored, err := os.ReadFile(filepath.Join(env.storageDir, "avatars", filepath.Base(resp.URL)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestUploadImageRejects(t *testing.T) {
	env := newAPIEnv(t)
	token := env.login(t, env.store.SeedUser(t, "rana", models.UserTypeIndividual))

	tests := []struct {
		name    string
		kind    string
		content []byte
		field   string
	}{
		{"bad kind", "banner", pngHeader, "kind"},
		{"missing file", "logo", nil, "file"},
		{"not an image", "cover", []byte("#!/bin/sh\necho hi\n"), "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, body := multipartImage(t, tt.kind, tt.content)
			w := env.request(t, http.MethodPost, "/api/uploads", token, contentType, body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			detail := decodeError(t, w)
			assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
			assert.Equal(t, tt.field, detail.Field)
		})
	}
}
