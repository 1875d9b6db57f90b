package response

import "github.com/gin-gonic/gin"

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func SendError(c *gin.Context, code int, message string, details any) {
	c.JSON(code, ErrorResponse{Error: message, Details: details})
}

func SendMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}
