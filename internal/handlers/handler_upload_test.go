package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"art-gallery/internal/testutil"

	"go.uber.org/mock/gomock"
)

func multipartImageRequest(t *testing.T, fieldName, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/artworks/images", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadHandler_StoresImageAndReturnsURL(t *testing.T) {
	tc := testutil.NewTestContext(t, "POST", "/api/artworks/images")
	defer tc.Finish()
	tc.WithRequest(multipartImageRequest(t, "image", "starry.png", []byte("png-bytes")))

	tc.MockUploader.EXPECT().
		Upload(gomock.Any(), "starry.png", gomock.Any(), int64(9), []byte("png-bytes")).
		Return("https://cdn.example/artworks/abc.png", nil)

	tc.CallHandler(POSTUploadHandler)

	tc.AssertStatus(t, http.StatusCreated)
	tc.AssertJSONField(t, "image_url", "https://cdn.example/artworks/abc.png")
}

func TestUploadHandler_Should400OnMissingFile(t *testing.T) {
	tc := testutil.NewTestContext(t, "POST", "/api/artworks/images")
	defer tc.Finish()
	tc.WithRequest(multipartImageRequest(t, "document", "notes.txt", []byte("text")))

	tc.CallHandler(POSTUploadHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "message", "Missing image file")
}

func TestUploadHandler_Should400OnRejectedUpload(t *testing.T) {
	tc := testutil.NewTestContext(t, "POST", "/api/artworks/images")
	defer tc.Finish()
	tc.WithRequest(multipartImageRequest(t, "image", "huge.bmp", []byte("bmp-bytes")))

	tc.MockUploader.EXPECT().
		Upload(gomock.Any(), "huge.bmp", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("unsupported content type"))

	tc.CallHandler(POSTUploadHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "message", "Image upload failed")
}

func TestUploadHandler_Should501WhenNotConfigured(t *testing.T) {
	tc := testutil.NewTestContext(t, "POST", "/api/artworks/images")
	defer tc.Finish()
	tc.AppContext.Uploader = nil

	tc.CallHandler(POSTUploadHandler)

	tc.AssertStatus(t, http.StatusNotImplemented)
}
