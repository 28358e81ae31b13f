package handlers

import (
	"io"
	"net/http"

	"art-gallery/internal/middlewares"
)

// POSTUploadHandler accepts a multipart image and stores it in the bucket.
// The returned URL is ready to use as an artwork's image_url.
func POSTUploadHandler(ctx *middlewares.AppContext) {
	if ctx.Uploader == nil {
		ctx.SetJSONError(http.StatusNotImplemented, "Image uploads are not configured")
		return
	}

	maxSize := ctx.Config.Uploads.MaxSizeBytes
	ctx.Request.Body = http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxSize)

	file, header, err := ctx.Request.FormFile("image")
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Failed to read image file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := ctx.Uploader.Upload(ctx.Request.Context(), header.Filename, contentType, int64(len(data)), data)
	if err != nil {
		ctx.Logger.Error("image upload failed", "filename", header.Filename, "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "Image upload failed")
		return
	}

	ctx.WriteJSON(http.StatusCreated, uploadResponse{ImageURL: url})
}
