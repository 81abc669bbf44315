package api

import (
	"net/http"
	"strings"
)

const msgInvalidFileType = "Format de fichier non valide"

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

func (a *Api) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.settings.MaxFileSize+1<<20)

	multipartFile, headers, err := r.FormFile("image")
	if err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			a.fileTooBigResponse(w, r)
			return
		}
		a.badRequestResponse(w, r, err)
		return
	}
	defer multipartFile.Close()

	if headers.Size > a.settings.MaxFileSize {
		a.fileTooBigResponse(w, r)
		return
	}

	extension, ok := imageExtensions[headers.Header.Get("Content-Type")]
	if !ok {
		a.failedValidationResponse(w, r, map[string]string{"image": msgInvalidFileType})
		return
	}

	filePath, err := a.savePicture(multipartFile, extension)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp := &struct {
		Path string `json:"path"`
	}{
		Path: filePath,
	}
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
