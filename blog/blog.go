// Package blog holds the core domain logic: the post visibility policy,
// the listing pipeline and the ownership checks guarding mutations. It is
// deliberately free of any HTTP concern; handlers in server/ translate its
// results into status codes and redirects.
package blog

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound signals both a genuinely absent row and a row the viewer is
// not allowed to see. The conflation is deliberate: answering differently
// would leak the existence of unpublished posts.
var ErrNotFound = errors.New("not found")

// Service executes all blog queries and mutations against a single DB.
type Service struct {
	DB *gorm.DB

	// Now is swappable so tests can pin the clock.
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}
