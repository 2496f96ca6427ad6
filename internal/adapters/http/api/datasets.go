package api

import (
	"errors"
	"io"
	"net/http"
)

// maxDatasetBytes bounds PUT /datasets bodies.
const maxDatasetBytes = 8 << 20

// DatasetHandler replaces dataset snapshots.
type DatasetHandler struct {
	deps DatasetDependencies
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(deps DatasetDependencies) *DatasetHandler {
	return &DatasetHandler{deps: deps}
}

// HandleReplace handles PUT /datasets/{name}. The body is a JSON array of
// records that becomes the dataset's new snapshot.
func (h *DatasetHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	const op = "api.replace_dataset"
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDatasetBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	info, err := h.deps.ReplaceDataset(r.Context(), r.PathValue("name"), body)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
