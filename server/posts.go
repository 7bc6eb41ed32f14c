package server

import (
	"net/http"
	"time"

	"github.com/Luismorlan/blogmux/blog"
	"github.com/Luismorlan/blogmux/server/middlewares"
	. "github.com/Luismorlan/blogmux/utils/log"
	"github.com/gin-gonic/gin"
)

// postInput is the create/edit form for a post. Author and creation time
// are never client-supplied.
type postInput struct {
	Title       string    `json:"title" binding:"required"`
	Text        string    `json:"text" binding:"required"`
	PubDate     time.Time `json:"pub_date" binding:"required"`
	LocationID  *string   `json:"location_id"`
	CategoryID  *string   `json:"category_id"`
	IsPublished *bool     `json:"is_published"`
}

func (in *postInput) toUpdate() blog.PostUpdate {
	isPublished := true
	if in.IsPublished != nil {
		isPublished = *in.IsPublished
	}
	return blog.PostUpdate{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		LocationID:  in.LocationID,
		CategoryID:  in.CategoryID,
		IsPublished: isPublished,
	}
}

// PostDetail serves one post with its chronological comment thread.
func (s *Server) PostDetail(c *gin.Context) {
	viewer := middlewares.Viewer(c)

	post, err := s.Blog.GetPost(c.Param("post_id"), viewer)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if s.ReadStatus != nil && viewer != "" {
		if err := s.ReadStatus.MarkPostRead(post.Id, viewer); err != nil {
			Log.Warn("fail to mark post read: ", err)
		}
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost publishes a new post owned by the requester.
func (s *Server) CreatePost(c *gin.Context) {
	var in postInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := s.Blog.CreatePost(middlewares.Viewer(c), in.toUpdate())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// EditPost updates a post. A non-owner is silently redirected to the
// detail view with nothing mutated.
func (s *Server) EditPost(c *gin.Context) {
	post, err := s.Blog.ResolvePost(c.Param("post_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if blog.Authorize(middlewares.Viewer(c), post.AuthorID) == blog.Denied {
		c.Redirect(http.StatusFound, "/posts/"+post.Id)
		return
	}

	var in postInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Blog.UpdatePost(post, in.toUpdate()); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+post.Id)
}

// DeletePost deletes a post, owner only, then sends the author back to
// the index.
func (s *Server) DeletePost(c *gin.Context) {
	post, err := s.Blog.ResolvePost(c.Param("post_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if blog.Authorize(middlewares.Viewer(c), post.AuthorID) == blog.Denied {
		c.Redirect(http.StatusFound, "/posts/"+post.Id)
		return
	}

	if err := s.Blog.DeletePost(post); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// UploadPostImage attaches an image to a post, owner only.
func (s *Server) UploadPostImage(c *gin.Context) {
	post, err := s.Blog.ResolvePost(c.Param("post_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if blog.Authorize(middlewares.Viewer(c), post.AuthorID) == blog.Denied {
		c.Redirect(http.StatusFound, "/posts/"+post.Id)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		s.respondError(c, err)
		return
	}
	defer file.Close()

	key, err := s.Media.Save(fileHeader.Filename, file)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if err := s.Blog.SetPostImage(post, key); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_key": key,
		"image_url": s.Media.GetUrlFromKey(key),
	})
}
