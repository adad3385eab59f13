package handler

import (
	"net/http"

	"roomie/service"
)

type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
}

func NewDiscoveryHandler(discoveryService *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

// FindProperties returns listings inside the caller's radius and budget
func (h *DiscoveryHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	properties, err := h.discoveryService.FindPropertiesNear(telegramID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, properties)
}

// FindCandidates returns potential roommate matches
func (h *DiscoveryHandler) FindCandidates(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	candidates, err := h.discoveryService.FindCandidates(telegramID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, candidates)
}

// FindMatches returns the caller's confirmed matches
func (h *DiscoveryHandler) FindMatches(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matches, err := h.discoveryService.GetMatches(telegramID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matches)
}

// FindLikedProperties returns listings the caller liked
func (h *DiscoveryHandler) FindLikedProperties(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	properties, err := h.discoveryService.GetLikedProperties(telegramID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, properties)
}
