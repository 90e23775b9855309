package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
	"github.com/de0k/mobcard-server/internal/pkg/response"
	"github.com/de0k/mobcard-server/internal/service"
)

type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// contactRequest uses pointer fields so a key that is absent from the body is
// distinguishable from one sent as an empty string. Only supplied keys reach
// the store; absent ones keep their current value on update.
type contactRequest struct {
	Email   string  `json:"email"`
	Name    *string `json:"name"`
	HP      *string `json:"hp"`
	Address *string `json:"address"`
	Fax     *string `json:"fax"`
	URL     *string `json:"url"`
	Produc  *string `json:"produc"`
	Rank    *string `json:"rank"`
	CName   *string `json:"cname"`
	ImgURL  *string `json:"imgurl"`
}

func (r *contactRequest) fields() map[string]interface{} {
	supplied := map[string]*string{
		"name":    r.Name,
		"hp":      r.HP,
		"address": r.Address,
		"fax":     r.Fax,
		"url":     r.URL,
		"produc":  r.Produc,
		"rank":    r.Rank,
		"cname":   r.CName,
		"imgurl":  r.ImgURL,
	}
	fields := make(map[string]interface{})
	for column, value := range supplied {
		if value != nil {
			fields[column] = *value
		}
	}
	return fields
}

func (h *ContactHandler) Save(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		response.Message(c, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.contacts.Upsert(c.Request.Context(), req.Email, req.fields()); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "saved")
}

func (h *ContactHandler) Get(c *gin.Context) {
	email := c.Param("email")
	rec, err := h.contacts.Get(c.Request.Context(), email)
	if err != nil {
		if appErr.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
