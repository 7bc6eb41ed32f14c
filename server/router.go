package server

import (
	"net/http"

	"github.com/Luismorlan/blogmux/server/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all blog routes. Extra middlewares
// (tracing etc.) are installed right after CORS, before any route.
func (s *Server) Router(extra ...gin.HandlerFunc) *gin.Engine {
	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	for _, m := range extra {
		router.Use(m)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/auth/registration", s.Register)
	router.POST("/auth/login", s.Login)

	// Read-only views serve anonymous visitors too, the viewer identity
	// only changes what the visibility policy lets through.
	viewer := middlewares.OptionalJWT()
	router.GET("/", viewer, s.IndexListing)
	router.GET("/posts/:post_id", viewer, s.PostDetail)
	router.GET("/category/:category_slug", viewer, s.CategoryListing)
	router.GET("/profile/:username", viewer, s.ProfileListing)

	authed := router.Group("/", middlewares.JWT())
	authed.POST("/posts/create", s.CreatePost)
	authed.POST("/posts/:post_id/edit", s.EditPost)
	authed.POST("/posts/:post_id/delete", s.DeletePost)
	authed.POST("/posts/:post_id/image", s.UploadPostImage)
	authed.POST("/posts/:post_id/comment", s.AddComment)
	authed.POST("/posts/:post_id/comment/:comment_id/edit", s.EditComment)
	authed.POST("/posts/:post_id/comment/:comment_id/delete", s.DeleteComment)
	authed.POST("/profile", s.EditProfile)

	return router
}
