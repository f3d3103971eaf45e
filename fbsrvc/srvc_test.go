package fbsrvc_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackd/backend/fbsrvc"
	"github.com/feedbackd/backend/srvcerror"
)

func TestSubmitThenRead(t *testing.T) {
	srvc := fbsrvc.NewFeedbackSrvc(fbsrvc.NewInMemRepo())
	ctx := context.Background()

	err := srvc.Submit(ctx, fbsrvc.SubmitParams{UserID: 42, Username: "Alice"})
	require.NoError(t, err)

	// a repeat with a different username is rejected and does not
	// overwrite the stored row
	err = srvc.Submit(ctx, fbsrvc.SubmitParams{UserID: 42, Username: "Bob"})
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, fbsrvc.ErrCodeAlreadySubmitted, srvcErr.ErrorCode())
	assert.Equal(t, http.StatusOK, srvcErr.HttpStatusCode())

	count, err := srvc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	subms, err := srvc.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, subms, 1)
	assert.Equal(t, "Alice", subms[0].Username)
	assert.Equal(t, int64(42), subms[0].UserID)
}

func TestSubmitMissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		params fbsrvc.SubmitParams
	}{
		{"zero user id", fbsrvc.SubmitParams{UserID: 0, Username: "Alice"}},
		{"empty username", fbsrvc.SubmitParams{UserID: 42, Username: ""}},
		{"both missing", fbsrvc.SubmitParams{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srvc := fbsrvc.NewFeedbackSrvc(fbsrvc.NewInMemRepo())
			ctx := context.Background()

			err := srvc.Submit(ctx, tc.params)
			srvcErr := &srvcerror.Error{}
			require.ErrorAs(t, err, &srvcErr)
			assert.Equal(t, fbsrvc.ErrCodeMissingRequiredFields, srvcErr.ErrorCode())
			assert.Equal(t, http.StatusBadRequest, srvcErr.HttpStatusCode())

			count, err := srvc.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count, "no row may be written for invalid params")
		})
	}
}

func TestListRecentOrderAndLimit(t *testing.T) {
	srvc := fbsrvc.NewFeedbackSrvc(fbsrvc.NewInMemRepo())
	ctx := context.Background()

	usernames := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}
	for i, username := range usernames {
		err := srvc.Submit(ctx, fbsrvc.SubmitParams{
			UserID:   int64(i + 1),
			Username: username,
		})
		require.NoError(t, err)
	}

	subms, err := srvc.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, subms, 3)
	assert.Equal(t, "Eve", subms[0].Username)
	for i := 1; i < len(subms); i++ {
		assert.Greater(t, subms[i-1].ID, subms[i].ID, "ids must be strictly descending")
	}
}

// downRepo fails every storage call, simulating an unreachable database.
type downRepo struct{}

func (downRepo) EnsureSchema(ctx context.Context) error { return errors.New("storage down") }

func (downRepo) Insert(ctx context.Context, username string, userID int64) error {
	return errors.New("storage down")
}

func (downRepo) Count(ctx context.Context) (int64, error) {
	return 0, errors.New("storage down")
}

func (downRepo) ListRecent(ctx context.Context, limit int) ([]fbsrvc.Submission, error) {
	return nil, errors.New("storage down")
}

func TestStorageFailureMapsToInternalError(t *testing.T) {
	srvc := fbsrvc.NewFeedbackSrvc(downRepo{})
	ctx := context.Background()

	err := srvc.Submit(ctx, fbsrvc.SubmitParams{UserID: 42, Username: "Alice"})
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, srvcerror.ErrCodeInternalServerError, srvcErr.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, srvcErr.HttpStatusCode())

	_, err = srvc.Count(ctx)
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, srvcerror.ErrCodeInternalServerError, srvcErr.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, srvcErr.HttpStatusCode())

	_, err = srvc.ListRecent(ctx, 100)
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, srvcerror.ErrCodeInternalServerError, srvcErr.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, srvcErr.HttpStatusCode())
}

func TestConcurrentSameUserSubmits(t *testing.T) {
	srvc := fbsrvc.NewFeedbackSrvc(fbsrvc.NewInMemRepo())
	ctx := context.Background()

	const workers = 16
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- srvc.Submit(ctx, fbsrvc.SubmitParams{UserID: 7, Username: "Alice"})
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent submit may win")

	count, err := srvc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
