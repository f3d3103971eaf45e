package fbsrvc

import (
	"context"

	"github.com/feedbackd/backend/srvcerror"
)

// Count returns the total number of stored submissions.
func (s *FeedbackSrvc) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, srvcerror.ErrInternalSE().SetDebug(err)
	}
	return count, nil
}

// ListRecent returns up to limit submissions, newest first.
func (s *FeedbackSrvc) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	subms, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	return subms, nil
}
