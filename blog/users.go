package blog

import (
	"github.com/Luismorlan/blogmux/model"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// ErrUsernameTaken is returned when registration or a profile edit collides
// with an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// ProfileUpdate carries the self-editable identity fields.
type ProfileUpdate struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// GetUserByUsername resolves a user for login and profile views.
func (s *Service) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	res := s.DB.Where("username = ?", username).First(&user)
	if res.RowsAffected != 1 {
		return nil, ErrNotFound
	}
	return &user, nil
}

// CreateUser registers a new user. The caller hashes the password; this
// layer only enforces username uniqueness.
func (s *Service) CreateUser(user *model.User) error {
	if user.Id == "" {
		user.Id = uuid.New().String()
	}
	var count int64
	s.DB.Model(&model.User{}).Where("username = ?", user.Username).Count(&count)
	if count > 0 {
		return ErrUsernameTaken
	}
	return errors.Wrap(s.DB.Create(user).Error, "fail to create user")
}

// UpdateProfile edits the requester's own identity. The target is always
// derived from the authenticated session, never from a URL parameter, so
// there is no ownership check to make.
func (s *Service) UpdateProfile(userId string, upd ProfileUpdate) (*model.User, error) {
	var user model.User
	res := s.DB.Where("id = ?", userId).First(&user)
	if res.RowsAffected != 1 {
		return nil, ErrNotFound
	}

	if upd.Username != user.Username {
		var count int64
		s.DB.Model(&model.User{}).Where("username = ?", upd.Username).Count(&count)
		if count > 0 {
			return nil, ErrUsernameTaken
		}
	}
	if err := copier.Copy(&user, &upd); err != nil {
		return nil, errors.Wrap(err, "fail to apply profile update")
	}
	if err := s.DB.Save(&user).Error; err != nil {
		return nil, errors.Wrap(err, "fail to update profile")
	}
	return &user, nil
}
