package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
	"github.com/de0k/mobcard-server/internal/pkg/response"
	"github.com/de0k/mobcard-server/internal/service"
)

type SkinHandler struct {
	skins *service.SkinService
}

func NewSkinHandler(skins *service.SkinService) *SkinHandler {
	return &SkinHandler{skins: skins}
}

type saveSelectionRequest struct {
	Email string `json:"email"`
	Skin  string `json:"skin"`
}

// SaveSelection upserts the selection for a known account. A missing email
// falls through to the account lookup and comes back as 404, same as any
// other unknown user.
func (h *SkinHandler) SaveSelection(c *gin.Context) {
	var req saveSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.skins.Save(c.Request.Context(), req.Email, req.Skin); err != nil {
		if appErr.IsNotFound(err) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Template selection saved successfully")
}

func (h *SkinHandler) GetSelection(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Fail(c, http.StatusBadRequest, "No email provided")
		return
	}
	sel, err := h.skins.Get(c.Request.Context(), email)
	if err != nil {
		if appErr.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, "Skin not found for the user")
			return
		}
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skin": sel.Skin})
}
