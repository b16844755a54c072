package handler

import (
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.SaveBookRequest
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

// Update - PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	var req book.SaveBookRequest
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

// FindByAuthor - GET /api/v1/books?authorId=
func (h *BookHandler) FindByAuthor(c *gin.Context) {
	views, err := h.service.FindByAuthor(c.Request.Context(), c.Query("authorId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, views)
}
