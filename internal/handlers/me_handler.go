package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservation/internal/dto"
	"github.com/BruksfildServices01/table-reservation/internal/httperr"
	"github.com/BruksfildServices01/table-reservation/internal/httpresp"
	"github.com/BruksfildServices01/table-reservation/internal/middleware"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	var user models.User
	err := h.db.First(&user, middleware.UserID(c)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "user_not_found", "Account no longer exists")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(user)})
}
