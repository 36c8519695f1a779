package httpresp

import "github.com/gin-gonic/gin"

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ListEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Total   int  `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(200, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(201, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListEnvelope{
		Success: true,
		Data:    data,
		Total:   len(data),
	})
}
