package handlers

import (
	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
	"pehlione.com/catalogadmin/internal/modules/auth"
)

type AuthHandler struct {
	Auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if !bindJSON(c, &in) {
		return
	}
	resp, err := h.Auth.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, gin.H{"userId": resp.UserID, "expiresTime": resp.ExpiresTime})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context()); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	info, err := h.Auth.Session(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, info)
}
