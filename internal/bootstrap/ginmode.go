package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode runs gin in release mode in production and whenever debug is off.
func SetGinMode(env string, debug bool) {
	if env == "production" || !debug {
		gin.SetMode(gin.ReleaseMode)
		return
	}
	gin.SetMode(gin.DebugMode)
}
