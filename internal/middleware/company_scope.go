package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// companyIDKey is the key used to store the tenant scope in the Gin context.
const companyIDKey = contextKey("companyID")

// companyIDHeader carries an explicit tenant scope on the request.
const companyIDHeader = "X-Company-ID"

// CompanyScope resolves the company scope for the request. Every data access
// is filtered by this ID; requests without the header fall back to the
// configured default company.
func CompanyScope(defaultCompanyID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := defaultCompanyID
		if header := c.GetHeader(companyIDHeader); header != "" {
			parsed, err := strconv.ParseInt(header, 10, 64)
			if err != nil || parsed <= 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + companyIDHeader + " header"})
				return
			}
			companyID = parsed
		}

		c.Set(string(companyIDKey), companyID)
		c.Next()
	}
}

// GetCompanyIDFromContext retrieves the resolved company scope from the Gin
// context. It returns the ID and a boolean indicating if it was found.
func GetCompanyIDFromContext(c *gin.Context) (int64, bool) {
	val, exists := c.Get(string(companyIDKey))
	if !exists {
		return 0, false
	}

	companyID, ok := val.(int64)
	if !ok {
		return 0, false
	}
	return companyID, true
}
