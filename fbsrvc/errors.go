package fbsrvc

import (
	"net/http"

	"github.com/feedbackd/backend/srvcerror"
)

const ErrCodeUnauthorized = "unauthorized"

func ErrUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"invalid or missing api secret",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeInvalidContentType = "invalid_content_type"

func ErrInvalidContentType() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidContentType,
		"request body must be json",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidJson = "invalid_json"

func ErrInvalidJson() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidJson,
		"request body is not valid json",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeMissingRequiredFields = "missing_required_fields"

func ErrMissingRequiredFields() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingRequiredFields,
		"both userId and username are required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAlreadySubmitted = "already_submitted"

// ErrAlreadySubmitted intentionally carries HTTP 200. The game server treats
// non-2xx responses as transient failures and retries; a duplicate submit is
// a final state, not a failure.
func ErrAlreadySubmitted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadySubmitted,
		"a submission for this user id already exists",
	).SetHttpStatusCode(http.StatusOK)
}
