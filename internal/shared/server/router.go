package server

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/shared/config"
	"todo-backend/internal/shared/server/middleware"
	"todo-backend/internal/shared/server/respond"
	"todo-backend/internal/todos"
	"todo-backend/internal/users"
)

// RouterDeps carries the handlers the router registers.
type RouterDeps struct {
	Config      config.Config
	TodoHandler *todos.Handler
	UserHandler *users.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.AllowedOrigins()),
	)

	root := r.Group("")
	root.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	deps.TodoHandler.RegisterRoutes(root)
	deps.UserHandler.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
