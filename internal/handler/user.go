package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов user service.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: uc,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register — POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	userID, err := h.userUseCase.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			respondWithError(w, http.StatusBadRequest, "Пользователь уже существует", h.logger)
		case errors.Is(err, domain.ErrValidation):
			respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.Error("registration failed", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Ошибка регистрации", h.logger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User registered successfully",
		"user_id": userID,
	}, h.logger)
}

// Login — POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	token, err := h.userUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Один и тот же ответ для неизвестного email и неверного пароля.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondWithError(w, http.StatusBadRequest, "Invalid credentials", h.logger)
			return
		}
		h.logger.Error("login failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка входа", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	}, h.logger)
}

// GetProfile — GET /users/{id}, только свой профиль.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный id пользователя", h.logger)
		return
	}

	user, err := h.userUseCase.GetProfile(r.Context(), callerID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			respondWithError(w, http.StatusForbidden, "Доступ запрещен", h.logger)
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "Пользователь не найден", h.logger)
		default:
			h.logger.Error("failed to fetch profile", "user_id", targetID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Ошибка получения профиля", h.logger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}, h.logger)
}
