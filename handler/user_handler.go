package handler

import (
	"encoding/json"
	"net/http"

	"roomie/pkg/dto"
	"roomie/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUser creates a profile for a new identity
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var payload dto.UserCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// FindMe returns the caller's own profile
func (h *UserHandler) FindMe(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userService.GetByTelegramID(telegramID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateMe applies a partial profile update
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var update dto.UserUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Update(telegramID, update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
