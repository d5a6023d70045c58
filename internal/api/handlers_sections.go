package api

import (
	"net/http"

	"github.com/dgallion1/planview/internal/artifact"
)

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sections": s.model.Sections()})
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(r, "sectionID")
	if !ok || !artifact.ValidSegment(id) {
		jsonError(w, "invalid section id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"section":  s.model.SectionData(id),
		"useShell": s.model.SectionUsesShell(id),
	})
}

func (s *Server) handleScreenDesign(w http.ResponseWriter, r *http.Request) {
	id, okID := pathParam(r, "sectionID")
	name, okName := pathParam(r, "name")
	if !okID || !okName || !artifact.ValidSegment(id) || !artifact.ValidSegment(name) {
		jsonError(w, "invalid section id or screen design name", http.StatusBadRequest)
		return
	}
	design := s.model.ScreenDesign(id, name)
	if design == nil {
		jsonError(w, "screen design not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"screenDesign": design,
		"url":          s.model.URL(design.Path),
		"useShell":     s.model.SectionUsesShell(id) && s.model.HasShellComponents(),
	})
}
