package httpx

import "github.com/gin-gonic/gin"

// ErrorBody — тело ответа об ошибке.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AbortError — завершает запрос с {error, details}; err может быть nil.
func AbortError(c *gin.Context, status int, msg string, err error) {
	body := ErrorBody{Error: msg}
	if err != nil {
		body.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}
