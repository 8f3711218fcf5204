package design

import (
	"encoding/json"
	"net/http"

	"Dogbone/internal/geometry/solid"
	"Dogbone/internal/geometry/volume"
	"Dogbone/internal/preview"
	"Dogbone/internal/standards"
)

type Handler struct {
	previews *preview.Coordinator[BuildResult]
}

func NewHandler() *Handler {
	return &Handler{previews: preview.New[BuildResult]()}
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Standard == "" {
		input.Standard = standards.E8
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(standards.Validate(input.Params, input.Standard))
}

func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	vf := volume.VoidFraction(input.LatticeType, input.LatticeParams())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{
		"void_fraction":   vf,
		"mass_saving_pct": vf * 100,
	})
}

// STL runs the full build and streams the triangulated gauge section.
func (h *Handler) STL(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Build(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "model/stl")
	w.Header().Set("Content-Disposition", "attachment; filename=\"specimen.stl\"")
	w.Write(solid.STL(res.Mesh))
}

// PreviewSubmit starts a build off the request path. A later submission
// supersedes this one; whichever carries the newest sequence wins.
func (h *Handler) PreviewSubmit(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	seq := h.previews.Submit(func() BuildResult {
		res, err := Build(input)
		if err != nil {
			res.Degraded = true
			res.Notes = err.Error()
		}
		return res
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]uint64{"seq": seq})
}

func (h *Handler) PreviewLatest(w http.ResponseWriter, r *http.Request) {
	res, seq, ok := h.previews.Latest()
	if !ok {
		http.Error(w, "No preview available yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Seq uint64 `json:"seq"`
		BuildResult
	}{Seq: seq, BuildResult: res})
}
