package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination metadata returned alongside every catalog listing.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// ListResponse wraps a page of items plus its pagination metadata.
type ListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// DataResponse wraps a single payload.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// MessageResponse carries a human-readable message, optionally with a
// payload (create/update confirmations).
type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Data 200 response with a data envelope.
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// Message 200 response with a confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// MessageWithData 200 response with message and payload.
func MessageWithData(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, MessageResponse{Message: message, Data: data})
}

// Created 201 response with message and payload.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, MessageResponse{Message: message, Data: data})
}

// Error generic error response.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// BadRequest 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 error response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
