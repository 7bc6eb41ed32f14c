package server

import (
	"net/http"

	"github.com/Luismorlan/blogmux/server/middlewares"
	. "github.com/Luismorlan/blogmux/utils/log"
	"github.com/gin-gonic/gin"
)

// IndexListing serves the site-wide feed of visible posts. Logged-in
// readers additionally get a per-post read flag when redis is around.
func (s *Server) IndexListing(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	listing, err := s.Blog.IndexListing(page)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := gin.H{
		"posts":       listing.Posts,
		"page":        listing.Number,
		"page_count":  listing.PageCount,
		"total_posts": listing.TotalPosts,
	}
	viewer := middlewares.Viewer(c)
	if s.ReadStatus != nil && viewer != "" {
		ids := make([]string, 0, len(listing.Posts))
		for _, post := range listing.Posts {
			ids = append(ids, post.Id)
		}
		if read, err := s.ReadStatus.GetPostsReadStatus(ids, viewer); err == nil {
			resp["read_status"] = read
		} else {
			Log.Warn("fail to fetch read status: ", err)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CategoryListing serves the posts of one published category.
func (s *Server) CategoryListing(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	category, listing, err := s.Blog.CategoryListing(c.Param("category_slug"), page)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category":    category,
		"posts":       listing.Posts,
		"page":        listing.Number,
		"page_count":  listing.PageCount,
		"total_posts": listing.TotalPosts,
	})
}

// ProfileListing serves a user's posts. The owner gets drafts and
// scheduled posts too; everyone else only what the policy passes.
func (s *Server) ProfileListing(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	profile, listing, err := s.Blog.ProfileListing(c.Param("username"), middlewares.Viewer(c), page)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":     profile,
		"posts":       listing.Posts,
		"page":        listing.Number,
		"page_count":  listing.PageCount,
		"total_posts": listing.TotalPosts,
	})
}
