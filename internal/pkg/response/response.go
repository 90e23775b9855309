package response

import "github.com/gin-gonic/gin"

// Message writes {"message": ...}, the shape used by the membership and
// contact-save endpoints.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Fail writes {"error": ...}, the shape used by the lookup endpoints.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
