package handler

import (
	"encoding/json"
	"net/http"

	"roomie/pkg/dto"
	"roomie/service"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// CreateLike records a like and reports whether it completed a mutual match
func (h *LikeHandler) CreateLike(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var payload dto.LikeCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := h.likeService.SubmitLike(telegramID, payload.TargetID, payload.TargetType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
