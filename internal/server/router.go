package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/auth"
	"github.com/SubhashKumar14/LearnPath/internal/catalog"
	"github.com/SubhashKumar14/LearnPath/internal/config"
	"github.com/SubhashKumar14/LearnPath/internal/handlers"
	"github.com/SubhashKumar14/LearnPath/internal/middleware"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

// New wires the full route table. Sessions are held server-side in the
// memstore; the cookie only carries the opaque session token. Swapping
// the store for an external one (e.g. redis) is a one-line change here.
func New(cfg *config.Config, st *store.Store, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(cors.Default())

	sessionStore := memstore.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("learnpath_session", sessionStore))

	authHandler := handlers.NewAuthHandler(auth.NewService(st.Users, log), log)
	roadmapHandler := handlers.NewRoadmapHandler(catalog.NewService(st.Roadmaps, log), log)
	progressHandler := handlers.NewProgressHandler(st.Progress, log)
	pages := handlers.NewPageHandler(cfg.PublicDir)

	// public pages
	r.GET("/", pages.Serve("index.html"))
	r.GET("/login", pages.Serve("login.html"))
	r.GET("/register", pages.Serve("register.html"))

	// pages for signed-in users
	user := r.Group("/", middleware.RequireAuth())
	user.GET("/dashboard", pages.Serve("dashboard.html"))
	user.GET("/roadmap/:id", pages.Serve("roadmap.html"))
	user.GET("/progress", pages.Serve("progress.html"))
	user.GET("/profile", pages.Serve("profile.html"))

	// admin pages; auth check runs before the role check
	admin := r.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.GET("", pages.Serve("admin.html"))
	admin.GET("/add-roadmap", pages.Serve("add-roadmap.html"))
	admin.GET("/manage-roadmaps", pages.Serve("manage-roadmaps.html"))

	api := r.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/roadmaps", roadmapHandler.List)
	api.GET("/roadmap/:id", roadmapHandler.Get)

	apiUser := api.Group("", middleware.RequireAuthAPI())
	apiUser.GET("/user", authHandler.CurrentUser)
	apiUser.POST("/progress", progressHandler.Update)
	apiUser.GET("/progress/:roadmapId", progressHandler.ListCompleted)

	api.POST("/roadmaps",
		middleware.RequireAuthAPI(),
		middleware.RequireAdminAPI(),
		roadmapHandler.Create,
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
