package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/response"
	"github.com/fekuna/omnipos-scm-service/internal/user"
	"github.com/fekuna/omnipos-scm-service/internal/user/dto"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc     user.UseCase
	tokens *auth.TokenIssuer
	logger logger.ZapLogger
}

func NewAuthHandler(uc user.UseCase, tokens *auth.TokenIssuer, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		tokens: tokens,
		logger: log,
	}
}

func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input dto.CredentialsInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	u, err := h.uc.ValidateUser(r.Context(), input.Username, input.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.issue(w, http.StatusOK, u)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input dto.CredentialsInput
	if err := response.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	u, err := h.uc.CreateUser(r.Context(), input.Username, input.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.issue(w, http.StatusCreated, u)
}

func (h *AuthHandler) issue(w http.ResponseWriter, status int, u *model.User) {
	token, err := h.tokens.Generate(&auth.UserContext{UserID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		h.logger.Error("failed to sign token", zap.Error(err))
		response.Error(w, err)
		return
	}

	body := dto.TokenResponse{Token: token, UserID: u.ID, Username: u.Username, Role: u.Role}
	if status == http.StatusCreated {
		response.Created(w, body)
		return
	}
	response.Success(w, body)
}
