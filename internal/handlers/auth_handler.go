package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	"github.com/BruksfildServices01/table-reservation/internal/config"
	"github.com/BruksfildServices01/table-reservation/internal/dto"
	"github.com/BruksfildServices01/table-reservation/internal/httperr"
	"github.com/BruksfildServices01/table-reservation/internal/httpresp"
	"github.com/BruksfildServices01/table-reservation/internal/middleware"
	"github.com/BruksfildServices01/table-reservation/internal/models"
	"github.com/BruksfildServices01/table-reservation/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  dto.UserDTO `json:"user"`
}

// --------- Handlers ---------

// Register always creates a plain user; admins come from the seed command.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Email is already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_already_registered", "Email is already registered")
			return
		}
		httperr.Respond(c, err)
		return
	}

	token, err := h.issueSession(c, &user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			UserID:   &user.ID,
			Action:   "user_registered",
			Entity:   "user",
			EntityID: &user.ID,
		})
	}

	httpresp.Created(c, AuthResponse{Token: token, User: dto.NewUserDTO(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	err := h.db.Where("email = ?", validators.NormalizeEmail(req.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := h.issueSession(c, &user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, AuthResponse{Token: token, User: dto.NewUserDTO(user)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	httpresp.Message(c, "Logged out")
}

// --------- JWT ---------

func (h *AuthHandler) issueSession(c *gin.Context, user *models.User) (string, error) {
	token, err := h.generateToken(user)
	if err != nil {
		return "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.TokenCookie,
		token,
		int(h.config.TokenTTL/time.Second),
		"/",
		"",
		false,
		true,
	)
	return token, nil
}

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(h.config.TokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
