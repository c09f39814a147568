package auth

import "github.com/gin-gonic/gin"

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return getString(c, "userID")
}

// GetTenantID returns the tenant the authenticated user belongs to, or empty
// string. Every tenant-scoped query must use this value explicitly; there is
// no ambient tenant state anywhere else.
func GetTenantID(c *gin.Context) string {
	return getString(c, "tenantID")
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	return getString(c, "userEmail")
}

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
