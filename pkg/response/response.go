package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 response with the error message.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// NotFound sends a 404 response with the error message.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: NotFoundErrorCode,
		Message:   err.Error(),
	})
}

// InternalError sends a 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends a 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests",
	})
}
