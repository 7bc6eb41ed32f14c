package server

import (
	"net/http"

	"github.com/Luismorlan/blogmux/blog"
	"github.com/Luismorlan/blogmux/server/middlewares"
	"github.com/gin-gonic/gin"
)

type commentInput struct {
	Text string `json:"text" binding:"required"`
}

// AddComment attaches a comment to a post and sends the reader back to
// the thread. The parent only has to exist, not be visible; commenting on
// a scheduled post is allowed.
func (s *Server) AddComment(c *gin.Context) {
	var in commentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postId := c.Param("post_id")
	if _, err := s.Blog.CreateComment(postId, middlewares.Viewer(c), in.Text); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postId)
}

// EditComment rewrites a comment, owner only. A non-owner lands back on
// the parent post with nothing mutated.
func (s *Server) EditComment(c *gin.Context) {
	postId := c.Param("post_id")

	comment, err := s.Blog.ResolveComment(postId, c.Param("comment_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if blog.Authorize(middlewares.Viewer(c), comment.AuthorID) == blog.Denied {
		c.Redirect(http.StatusFound, "/posts/"+postId)
		return
	}

	var in commentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Blog.UpdateComment(comment, in.Text); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postId)
}

// DeleteComment removes a comment, owner only.
func (s *Server) DeleteComment(c *gin.Context) {
	postId := c.Param("post_id")

	comment, err := s.Blog.ResolveComment(postId, c.Param("comment_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if blog.Authorize(middlewares.Viewer(c), comment.AuthorID) == blog.Denied {
		c.Redirect(http.StatusFound, "/posts/"+postId)
		return
	}

	if err := s.Blog.DeleteComment(comment); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postId)
}
