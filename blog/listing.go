package blog

import (
	"github.com/Luismorlan/blogmux/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostsPerPage is the fixed page size for every listing.
const PostsPerPage = 10

// Page is one page of a listing: posts annotated with their comment count,
// ordered by pub date descending.
type Page struct {
	Posts      []*model.Post `json:"posts"`
	Number     int           `json:"page"`
	PageCount  int           `json:"page_count"`
	TotalPosts int64         `json:"total_posts"`
}

// annotated decorates a post query with the comment count subquery, the
// association preloads and the canonical ordering shared by all listings.
func (s *Service) annotated(db *gorm.DB) *gorm.DB {
	countSubQuery := s.DB.Model(&model.Comment{}).
		Select("count(*)").
		Where("comments.post_id = posts.id")
	return db.
		Select("posts.*, (?) AS comment_count", countSubQuery).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC")
}

// listing runs the shared filter/annotate/order/paginate pipeline. A page
// outside [1, pageCount] fails with ErrNotFound; an empty result set still
// has exactly one (empty) page.
func (s *Service) listing(scope func(db *gorm.DB) *gorm.DB, page int) (*Page, error) {
	if page < 1 {
		return nil, ErrNotFound
	}

	var total int64
	if err := s.DB.Model(&model.Post{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "fail to count posts for listing")
	}

	pageCount := int((total + PostsPerPage - 1) / PostsPerPage)
	if pageCount == 0 {
		pageCount = 1
	}
	if page > pageCount {
		return nil, ErrNotFound
	}

	var posts []*model.Post
	res := s.annotated(s.DB.Model(&model.Post{}).Scopes(scope)).
		Limit(PostsPerPage).
		Offset((page - 1) * PostsPerPage).
		Find(&posts)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "fail to query posts for listing")
	}

	return &Page{
		Posts:      posts,
		Number:     page,
		PageCount:  pageCount,
		TotalPosts: total,
	}, nil
}

// IndexListing is the site-wide listing of visibility-passing posts.
func (s *Service) IndexListing(page int) (*Page, error) {
	return s.listing(visibleScope(s.Now()), page)
}

// CategoryListing resolves a published category by slug and lists its
// visibility-passing posts. An unknown or unpublished slug is ErrNotFound.
func (s *Service) CategoryListing(slug string, page int) (*model.Category, *Page, error) {
	// A malformed slug can't match any category, skip the query.
	if !model.IsValidSlug(slug) {
		return nil, nil, ErrNotFound
	}

	var category model.Category
	res := s.DB.Where("slug = ? AND is_published = ?", slug, true).First(&category)
	if res.RowsAffected != 1 {
		return nil, nil, ErrNotFound
	}

	now := s.Now()
	scope := func(db *gorm.DB) *gorm.DB {
		return visibleScope(now)(db).Where("posts.category_id = ?", category.Id)
	}
	listingPage, err := s.listing(scope, page)
	if err != nil {
		return nil, nil, err
	}
	return &category, listingPage, nil
}

// ProfileListing resolves a user by username and lists their posts. The
// profile owner sees all of their own posts, drafts and scheduled ones
// included; every other viewer goes through the visibility policy.
func (s *Service) ProfileListing(username string, viewerId string, page int) (*model.User, *Page, error) {
	var profile model.User
	res := s.DB.Where("username = ?", username).First(&profile)
	if res.RowsAffected != 1 {
		return nil, nil, ErrNotFound
	}

	var scope func(db *gorm.DB) *gorm.DB
	if viewerId == profile.Id {
		scope = func(db *gorm.DB) *gorm.DB {
			return db.Where("posts.author_id = ?", profile.Id)
		}
	} else {
		now := s.Now()
		scope = func(db *gorm.DB) *gorm.DB {
			return visibleScope(now)(db).Where("posts.author_id = ?", profile.Id)
		}
	}

	listingPage, err := s.listing(scope, page)
	if err != nil {
		return nil, nil, err
	}
	return &profile, listingPage, nil
}
