package fbsrvc

import (
	"context"
	"errors"

	"github.com/feedbackd/backend/srvcerror"
)

type SubmitParams struct {
	UserID   int64
	Username string
}

// Submit persists a new submission. A repeat for the same user id returns
// ErrAlreadySubmitted and leaves the stored row untouched.
func (s *FeedbackSrvc) Submit(ctx context.Context, p SubmitParams) error {
	if p.UserID == 0 || p.Username == "" {
		return ErrMissingRequiredFields()
	}

	err := s.repo.Insert(ctx, p.Username, p.UserID)
	if err != nil {
		if errors.Is(err, ErrDuplicateUserID) {
			return ErrAlreadySubmitted().SetDebug(err)
		}
		return srvcerror.ErrInternalSE().SetDebug(err)
	}
	return nil
}
