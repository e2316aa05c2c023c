package app

import (
	"context"
	"encoding/base64"

	"locheck/internal/usecase/importer"
)

type ImportAPI struct {
	svc *importer.Service
}

func NewImportAPI(svc *importer.Service) *ImportAPI { return &ImportAPI{svc: svc} }

type ImportRequest struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	// Both payloads are base64-encoded text bytes.
	JliffB64  string `json:"jliff_b64"`
	TagMapB64 string `json:"tagmap_b64"`
}

type ImportResponse struct {
	FileID   int64 `json:"file_id"`
	Units    int   `json:"units"`
	Segments int   `json:"segments"`
}

func (a *ImportAPI) ImportBase64(req ImportRequest) (ImportResponse, error) {
	ctx := context.Background()
	jl, err := base64.StdEncoding.DecodeString(req.JliffB64)
	if err != nil {
		return ImportResponse{}, err
	}
	tm, err := base64.StdEncoding.DecodeString(req.TagMapB64)
	if err != nil {
		return ImportResponse{}, err
	}
	res, err := a.svc.Import(ctx, importer.ImportArgs{ProjectID: req.ProjectID, Name: req.Name, JliffContent: jl, TagMapContent: tm})
	if err != nil {
		return ImportResponse{}, err
	}
	return ImportResponse{FileID: res.FileID, Units: res.Units, Segments: res.Segments}, nil
}
