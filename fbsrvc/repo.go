package fbsrvc

import (
	"context"
	"errors"
)

// ErrDuplicateUserID is returned by Repo.Insert when a row for the given
// user id already exists. The storage-level unique constraint on user_id is
// what makes submits idempotent.
var ErrDuplicateUserID = errors.New("submission with this user id already exists")

type Repo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, username string, userID int64) error
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]Submission, error)
}
