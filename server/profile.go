package server

import (
	"net/http"

	"github.com/Luismorlan/blogmux/blog"
	"github.com/Luismorlan/blogmux/server/middlewares"
	"github.com/gin-gonic/gin"
)

type profileInput struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// EditProfile updates the requester's own identity. The target comes from
// the session, not the URL, so there is no ownership gate here.
func (s *Server) EditProfile(c *gin.Context) {
	var in profileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.Blog.UpdateProfile(middlewares.Viewer(c), blog.ProfileUpdate{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
