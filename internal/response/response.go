package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendSuccess writes data as the JSON body
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	if data == nil {
		c.Status(statusCode)
		return
	}
	c.JSON(statusCode, data)
}

// SendText writes a plain-text body
func SendText(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

// SendError writes an error response. Not-found responses carry no body,
// every other error carries its message as plain text.
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.Header("X-Error-Code", code)
	if statusCode == http.StatusNotFound {
		c.Status(statusCode)
		return
	}
	c.String(statusCode, message)
}

// AbortWithError writes an error response and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, code, message string) {
	SendError(c, statusCode, code, message)
	c.Abort()
}
