package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONDenied reports an admission/business rejection. reason is a stable
// machine-readable code; extra carries context such as the availability
// snapshot or the violated restrictions.
func JSONDenied(c *gin.Context, code int, reason string, message string, extra gin.H) {
	body := gin.H{"success": false, "code": reason, "error": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}
