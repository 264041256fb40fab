package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/domain/entity"
	"github.com/givehub/givehub/internal/interface/middleware"
	"github.com/givehub/givehub/pkg/response"
	"github.com/givehub/givehub/pkg/validation"
)

// AuthService is the slice of the application service the HTTP layer needs.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*application.LoginResult, error)
	Login(ctx context.Context, email, password string) (*application.LoginResult, error)
	FindUserByID(ctx context.Context, id string) (*entity.User, error)
}

type AuthHandler struct {
	Svc    AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDuplicateCredential):
			resp := response.Error[any](c, http.StatusConflict, "email already registered", nil)
			c.JSON(resp.Status, resp)
		default:
			resp := response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
			c.JSON(resp.Status, resp)
		}
		return
	}

	resp := response.Success(c, http.StatusCreated, gin.H{
		"user":  userPayload(res.User),
		"token": res.Token,
	}, "registered", map[string]any{"expires_at": res.ExpiresAt})
	c.JSON(resp.Status, resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are indistinguishable here.
		resp := response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success(c, http.StatusOK, gin.H{
		"user":  userPayload(res.User),
		"token": res.Token,
	}, "login successful", map[string]any{"expires_at": res.ExpiresAt})
	c.JSON(resp.Status, resp)
}

// Protected GET /api/auth/protected (bearer-token guarded)
func (h *AuthHandler) Protected(c *gin.Context) {
	v, ok := c.Get(middleware.CtxUserKey)
	if !ok {
		resp := response.Error[any](c, http.StatusUnauthorized, "authentication failed", nil)
		c.JSON(resp.Status, resp)
		return
	}
	user := v.(*entity.User)
	resp := response.Success(c, http.StatusOK, gin.H{"user": userPayload(user)}, "protected route accessed successfully", nil)
	c.JSON(resp.Status, resp)
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id":                  u.ID,
		"name":                u.Name,
		"profile_picture_url": u.ProfilePictureURL,
		"personal_statement":  u.PersonalStatement,
		"points":              u.Points,
		"created_at":          u.CreatedAt,
		"updated_at":          u.UpdatedAt,
		"last_login":          u.LastLogin,
	}
}
