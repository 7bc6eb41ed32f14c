package blog

import (
	"testing"
	"time"

	"github.com/Luismorlan/blogmux/model"
	"github.com/Luismorlan/blogmux/utils"
	"github.com/stretchr/testify/require"
)

func TestGetPostAuthorBypass(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	stranger := utils.TestCreateUser(t, db, "stranger")
	draft := utils.TestCreatePost(t, db, author, nil, now.Add(-time.Hour), false)

	got, err := s.GetPost(draft.Id, author.Id)
	require.NoError(t, err)
	require.Equal(t, draft.Id, got.Id)

	// For anyone else a policy failure reads exactly like absence.
	_, err = s.GetPost(draft.Id, stranger.Id)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetPost(draft.Id, "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetPost("no-such-id", author.Id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetPostCommentThread(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	reader := utils.TestCreateUser(t, db, "reader")
	post := utils.TestCreatePost(t, db, author, nil, now.Add(-time.Hour), true)

	first := utils.TestCreateComment(t, db, post, reader, "first")
	second := utils.TestCreateComment(t, db, post, author, "second")

	got, err := s.GetPost(post.Id, "")
	require.NoError(t, err)
	require.Equal(t, int64(2), got.CommentCount)
	require.Len(t, got.Comments, 2)
	// chronological thread
	require.Equal(t, first.Id, got.Comments[0].Id)
	require.Equal(t, second.Id, got.Comments[1].Id)
	require.Equal(t, "reader", got.Comments[0].Author.Username)
}

func TestUpdatePost(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	category := utils.TestCreateCategory(t, db, "golang", true)
	post := utils.TestCreatePost(t, db, author, category, now.Add(-time.Hour), true)

	err := s.UpdatePost(post, PostUpdate{
		Title:       "updated title",
		Text:        "updated text",
		PubDate:     post.PubDate,
		CategoryID:  nil,
		IsPublished: false,
	})
	require.NoError(t, err)

	reloaded, err := s.ResolvePost(post.Id)
	require.NoError(t, err)
	require.Equal(t, "updated title", reloaded.Title)
	require.False(t, reloaded.IsPublished)
	require.Nil(t, reloaded.CategoryID)
}

func TestDeletePostCascadesComments(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	post := utils.TestCreatePost(t, db, author, nil, now.Add(-time.Hour), true)
	utils.TestCreateComment(t, db, post, author, "soon gone")

	require.NoError(t, s.DeletePost(post))

	_, err := s.ResolvePost(post.Id)
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	db.Model(&model.Comment{}).Where("post_id = ?", post.Id).Count(&count)
	require.Equal(t, int64(0), count)
}

func TestCategoryAndLocationDeleteNullOutPosts(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	category := utils.TestCreateCategory(t, db, "doomed", true)
	location := utils.TestCreateLocation(t, db, "atlantis")
	post := utils.TestCreatePost(t, db, author, category, now.Add(-time.Hour), true)
	require.NoError(t, s.UpdatePost(post, PostUpdate{
		Title:       post.Title,
		Text:        post.Text,
		PubDate:     post.PubDate,
		CategoryID:  post.CategoryID,
		LocationID:  &location.Id,
		IsPublished: true,
	}))

	require.NoError(t, db.Delete(category).Error)
	require.NoError(t, db.Delete(location).Error)

	// The post survives both deletions with its references nulled out.
	reloaded, err := s.ResolvePost(post.Id)
	require.NoError(t, err)
	require.Nil(t, reloaded.CategoryID)
	require.Nil(t, reloaded.LocationID)
}

func TestResolveCommentScopedToParent(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	postA := utils.TestCreatePost(t, db, author, nil, now.Add(-time.Hour), true)
	postB := utils.TestCreatePost(t, db, author, nil, now.Add(-2*time.Hour), true)
	comment := utils.TestCreateComment(t, db, postA, author, "on post A")

	got, err := s.ResolveComment(postA.Id, comment.Id)
	require.NoError(t, err)
	require.Equal(t, comment.Id, got.Id)

	// The right comment id under the wrong post reads as absent.
	_, err = s.ResolveComment(postB.Id, comment.Id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCommentSkipsVisibilityPolicy(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	reader := utils.TestCreateUser(t, db, "reader")
	scheduled := utils.TestCreatePost(t, db, author, nil, now.Add(time.Hour), true)

	// The post is not visible to the reader yet, commenting still works.
	comment, err := s.CreateComment(scheduled.Id, reader.Id, "early comment")
	require.NoError(t, err)
	require.Equal(t, scheduled.Id, comment.PostID)

	_, err = s.CreateComment("no-such-post", reader.Id, "orphan")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCommentUpdateAndDelete(t *testing.T) {
	s, db := newTestService(t)
	now := time.Now()

	author := utils.TestCreateUser(t, db, "author")
	post := utils.TestCreatePost(t, db, author, nil, now.Add(-time.Hour), true)
	comment := utils.TestCreateComment(t, db, post, author, "original")

	require.NoError(t, s.UpdateComment(comment, "edited"))
	reloaded, err := s.ResolveComment(post.Id, comment.Id)
	require.NoError(t, err)
	require.Equal(t, "edited", reloaded.Text)

	require.NoError(t, s.DeleteComment(reloaded))
	_, err = s.ResolveComment(post.Id, comment.Id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserAndProfileUpdate(t *testing.T) {
	s, db := newTestService(t)

	user := model.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, s.CreateUser(&user))
	require.NotEmpty(t, user.Id)

	dup := model.User{Username: "alice"}
	require.ErrorIs(t, s.CreateUser(&dup), ErrUsernameTaken)

	taken := utils.TestCreateUser(t, db, "bob")

	updated, err := s.UpdateProfile(user.Id, ProfileUpdate{
		Username:  "alice2",
		FirstName: "Alice",
		Email:     "alice2@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)
	require.Equal(t, "Alice", updated.FirstName)

	_, err = s.UpdateProfile(user.Id, ProfileUpdate{Username: taken.Username})
	require.ErrorIs(t, err, ErrUsernameTaken)
}
