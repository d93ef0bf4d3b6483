package httpx

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/you/shopsvc/internal/http/handlers"
	"github.com/you/shopsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.ProductHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), cors.Default())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.GET("/verify-reset-token/:token", ah.VerifyResetToken)

	account := r.Group("/api/auth").Use(jwtmw.WithJWT())
	account.GET("/account-settings", ah.GetAccountSettings)
	account.POST("/account-settings", ah.UpdateAccountSettings)

	products := r.Group("/api/products")
	products.POST("", ph.Create)
	products.GET("", ph.List)
	products.GET("/:id", ph.Get)
	products.PUT("/:id", ph.Update)
	products.DELETE("/:id", ph.Delete)
	products.POST("/upload-image", ph.UploadImage)
	products.GET("/image/:id", ph.DownloadImage)

	// Seller routes mirror the product routes; the listing stays unscoped but
	// mutations require a Seller or Admin token.
	sellers := r.Group("/api/sellers")
	sellers.GET("", ph.List)
	sellers.GET("/:id", ph.Get)

	sellerMut := r.Group("/api/sellers").Use(jwtmw.WithJWT(), cb.Enforce())
	sellerMut.POST("", ph.Create)
	sellerMut.PUT("/:id", ph.Update)
	sellerMut.DELETE("/:id", ph.Delete)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
