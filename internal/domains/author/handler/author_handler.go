package handler

import (
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request parameters are malformed")
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c)
}

// Update - PUT /api/v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	var req author.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request parameters are malformed")
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
