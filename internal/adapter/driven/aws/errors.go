package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// APIError is a failed EC2/STS call, reduced to the provider's code and message.
type APIError struct {
	Action  string
	Code    string
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("failed to %s: %v", e.Action, e.Cause)
	}
	return fmt.Sprintf("failed to %s: %s (%s)", e.Action, e.Message, e.Code)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func wrapAPIError(action string, err error) error {
	if err == nil {
		return nil
	}

	apiErr := &APIError{Action: action, Cause: err}

	var smithyErr smithy.APIError
	if errors.As(err, &smithyErr) {
		apiErr.Code = smithyErr.ErrorCode()
		apiErr.Message = smithyErr.ErrorMessage()
	}

	return apiErr
}
