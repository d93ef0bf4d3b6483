package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/shopsvc/internal/config"
	httpx "github.com/you/shopsvc/internal/http"
	"github.com/you/shopsvc/internal/http/handlers"
	"github.com/you/shopsvc/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	prodH := handlers.NewProductHandlers(c.ProductSvc)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, prodH, jwtMW, casbinMW)

	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) == 0 {
		c.Casbin.E.AddPolicy("role_seller", "/api/sellers*", "(POST|PUT|DELETE)")
		c.Casbin.E.AddPolicy("role_admin", "/api/sellers*", "(POST|PUT|DELETE)")
		_ = c.Casbin.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
