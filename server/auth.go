package server

import (
	"net/http"

	"github.com/Luismorlan/blogmux/model"
	"github.com/Luismorlan/blogmux/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Luismorlan/blogmux/blog"
)

const minPasswordLength = 8

type registrationInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account.
func (s *Server) Register(c *gin.Context) {
	var in registrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(in.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.respondError(c, errors.Wrap(err, "fail to hash password"))
		return
	}

	user := model.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.Blog.CreateUser(&user); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login verifies the credentials and returns a bearer token.
func (s *Server) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.Blog.GetUserByUsername(in.Username)
	// A wrong username and a wrong password answer identically.
	if errors.Is(err, blog.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middlewares.IssueToken(user.Id)
	if err != nil {
		s.respondError(c, errors.Wrap(err, "fail to issue token"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
