package handler

import (
	"github.com/gesscam/community-portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything RegisterRoutes needs to wire the API.
type Handlers struct {
	Auth    *AuthHandler
	News    *NewsHandler
	Gallery *GalleryHandler
	Comment *CommentHandler
	Exec    *ExecHandler
	Page    *PageHandler
	About   *AboutHandler
	Home    *HomeHandler
	Upload  *UploadHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	api.POST("/register", h.Auth.Register)

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", requireAuth, h.Auth.Logout)
		auth.GET("/me", requireAuth, h.Auth.Me)
	}

	news := api.Group("/news")
	{
		news.GET("", h.News.List)
		news.GET("/:id", h.News.Get)
		news.GET("/categories/:slug", h.News.GetByCategorySlug)
		news.GET("/:id/comments", h.Comment.ListForPost)

		news.POST("", requireAuth, requireAdmin, h.News.Create)
		news.GET("/:id/edit", requireAuth, requireAdmin, h.News.GetForEdit)
		news.PUT("/:id", requireAuth, requireAdmin, h.News.Update)
		news.DELETE("/:id", requireAuth, requireAdmin, h.News.Delete)
		news.POST("/categories", requireAuth, requireAdmin, h.News.CreateCategory)

		news.POST("/:id/comments", requireAuth, h.Comment.Create)
		news.PATCH("/:id/comments/:commentId", requireAuth, h.Comment.Update)
		news.DELETE("/:id/comments/:commentId", requireAuth, h.Comment.Delete)
	}

	gallery := api.Group("/gallery")
	{
		gallery.GET("", h.Gallery.List)
		gallery.GET("/:id", h.Gallery.Get)
		gallery.GET("/categories", h.Gallery.ListCategories)
		gallery.GET("/categories/:slug", h.Gallery.GetByCategorySlug)

		gallery.POST("", requireAuth, requireAdmin, h.Gallery.Create)
		gallery.PUT("/:id", requireAuth, requireAdmin, h.Gallery.Update)
		gallery.DELETE("/:id", requireAuth, requireAdmin, h.Gallery.Delete)
	}

	exec := api.Group("/exec-body")
	{
		exec.GET("", h.Exec.List)
		exec.POST("", requireAuth, requireAdmin, h.Exec.Create)
		exec.PUT("/:id", requireAuth, requireAdmin, h.Exec.Update)
		exec.DELETE("/:id", requireAuth, requireAdmin, h.Exec.Delete)
	}

	about := api.Group("/about")
	{
		about.GET("", h.About.List)
		about.POST("", requireAuth, requireAdmin, h.About.Create)
		about.PUT("/:id", requireAuth, requireAdmin, h.About.Update)
		about.DELETE("/:id", requireAuth, requireAdmin, h.About.Delete)
	}

	home := api.Group("/home")
	{
		home.GET("", h.Home.List)
		home.POST("", requireAuth, requireAdmin, h.Home.Create)
		home.PUT("/:id", requireAuth, requireAdmin, h.Home.Update)
		home.DELETE("/:id", requireAuth, requireAdmin, h.Home.Delete)
	}

	pages := api.Group("/admin/pages")
	{
		pages.GET("/:slug", h.Page.Get)
		pages.PUT("/:slug", requireAuth, requireAdmin, h.Page.Upsert)
	}

	if h.Upload != nil {
		api.POST("/upload", requireAuth, requireAdmin, h.Upload.Upload)
	}
}
