package blog

import (
	"time"

	"github.com/Luismorlan/blogmux/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Decision is the outcome of an ownership check.
type Decision int

const (
	Allowed Decision = iota
	Denied
)

// Authorize is the single ownership gate invoked at the top of every
// mutation handler. Only the resource owner is Allowed; handlers translate
// Denied into a redirect to the resource's detail view, never an error.
func Authorize(viewerId string, ownerId string) Decision {
	if viewerId != "" && viewerId == ownerId {
		return Allowed
	}
	return Denied
}

// PostUpdate carries the mutable post fields submitted on create/edit.
type PostUpdate struct {
	Title       string
	Text        string
	PubDate     time.Time
	LocationID  *string
	CategoryID  *string
	IsPublished bool
}

// ResolvePost fetches a post by id with no visibility filtering. Mutation
// paths use it: existence and ownership are separate questions there.
func (s *Service) ResolvePost(id string) (*model.Post, error) {
	var post model.Post
	res := s.DB.Where("id = ?", id).First(&post)
	if res.RowsAffected != 1 {
		return nil, ErrNotFound
	}
	return &post, nil
}

// GetPost resolves a post for a reader. The author sees their own post
// unconditionally; anyone else goes through the visibility policy, and a
// policy failure reads exactly like absence. The comment thread comes back
// preloaded in chronological order.
func (s *Service) GetPost(id string, viewerId string) (*model.Post, error) {
	var post model.Post
	res := s.DB.
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Where("id = ?", id).
		First(&post)
	if res.RowsAffected != 1 {
		return nil, ErrNotFound
	}

	if !VisibleTo(&post, viewerId, s.Now()) {
		return nil, ErrNotFound
	}

	post.CommentCount = int64(len(post.Comments))
	return &post, nil
}

// apply writes the submitted fields onto the post. Assignment is explicit
// on purpose: a nil LocationID/CategoryID must clear the association, not
// leave it alone.
func (upd PostUpdate) apply(post *model.Post) {
	post.Title = upd.Title
	post.Text = upd.Text
	post.PubDate = upd.PubDate
	post.LocationID = upd.LocationID
	post.CategoryID = upd.CategoryID
	post.IsPublished = upd.IsPublished
}

// CreatePost inserts a new post owned by authorId.
func (s *Service) CreatePost(authorId string, upd PostUpdate) (*model.Post, error) {
	post := model.Post{
		Id:       uuid.New().String(),
		AuthorID: authorId,
	}
	upd.apply(&post)
	if err := s.DB.Create(&post).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create post")
	}
	return &post, nil
}

// UpdatePost overwrites the mutable fields of post. Callers must have
// passed Authorize already.
func (s *Service) UpdatePost(post *model.Post, upd PostUpdate) error {
	upd.apply(post)
	if err := s.DB.Save(post).Error; err != nil {
		return errors.Wrap(err, "fail to update post")
	}
	return nil
}

// SetPostImage points the post at a freshly stored media key. Callers must
// have passed Authorize already.
func (s *Service) SetPostImage(post *model.Post, key string) error {
	post.ImageKey = key
	return errors.Wrap(s.DB.Save(post).Error, "fail to set post image")
}

// DeletePost removes the post; its comments cascade away at the DB level.
func (s *Service) DeletePost(post *model.Post) error {
	return errors.Wrap(s.DB.Delete(post).Error, "fail to delete post")
}

// ResolveComment fetches a comment by id scoped to its parent post, so a
// comment id paired with the wrong post id reads as absent.
func (s *Service) ResolveComment(postId string, commentId string) (*model.Comment, error) {
	var comment model.Comment
	res := s.DB.Where("id = ? AND post_id = ?", commentId, postId).First(&comment)
	if res.RowsAffected != 1 {
		return nil, ErrNotFound
	}
	return &comment, nil
}

// CreateComment attaches a new comment by authorId to the post. The parent
// only has to exist; no visibility check runs here, so commenting on a
// post before its publish time is allowed.
func (s *Service) CreateComment(postId string, authorId string, text string) (*model.Comment, error) {
	if _, err := s.ResolvePost(postId); err != nil {
		return nil, err
	}
	comment := model.Comment{
		Id:          uuid.New().String(),
		Text:        text,
		PostID:      postId,
		AuthorID:    authorId,
		IsPublished: true,
	}
	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create comment")
	}
	return &comment, nil
}

// UpdateComment replaces the comment text. Callers must have passed
// Authorize already.
func (s *Service) UpdateComment(comment *model.Comment, text string) error {
	comment.Text = text
	return errors.Wrap(s.DB.Save(comment).Error, "fail to update comment")
}

func (s *Service) DeleteComment(comment *model.Comment) error {
	return errors.Wrap(s.DB.Delete(comment).Error, "fail to delete comment")
}
