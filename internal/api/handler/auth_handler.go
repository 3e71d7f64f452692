package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/dto"
	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type AuthHandler struct {
	base
}

func NewAuthHandler(resolve StorefrontResolver) *AuthHandler {
	return &AuthHandler{base: newBase(resolve)}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := sf.Session.Login(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, dto.UserResponse{User: user}, "Inicio de sesión exitoso")
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := sf.Session.Register(r.Context(), req); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, nil, "Usuario registrado")
}

// Logout always ends the local session. A backend failure is still reported.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	if err := sf.Session.Logout(r.Context()); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "Sesión cerrada")
}

// Me restores the identity from the backend cookie. Anonymous sessions get
// {"user": null}.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	user, err := sf.Session.Me(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, dto.UserResponse{User: user}, "")
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req dto.EmailDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := sf.Session.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *AuthHandler) VerifyResetToken(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req dto.TokenDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := sf.Session.VerifyResetToken(r.Context(), req.Token)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, res, res.Message)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := sf.Session.ResetPassword(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}
