package sfn

import (
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/teranos/paw/errors"
)

// TransportError is a failed Step Functions call. Op is the API operation,
// Code the service error code when the SDK returned a smithy.APIError.
type TransportError struct {
	Op   string
	Code string
	Err  error
}

func (e *TransportError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the SDK error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes every TransportError match errors.ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == errors.ErrTransport
}

// wrapTransport converts an SDK error into a TransportError marked with
// errors.ErrTransport and annotated with an operator hint when one applies.
func wrapTransport(op string, err error) error {
	if err == nil {
		return nil
	}

	te := &TransportError{Op: op, Err: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		te.Code = apiErr.ErrorCode()
	}

	wrapped := errors.Mark(te, errors.ErrTransport)
	if hint := hintFor(te); hint != "" {
		wrapped = errors.WithHint(wrapped, hint)
	}
	return wrapped
}

func hintFor(te *TransportError) string {
	switch te.Code {
	case "UnrecognizedClientException", "InvalidClientTokenId", "ExpiredTokenException", "AccessDeniedException":
		return "check AWS_PROFILE / AWS_REGION and that the credentials can call states:" + te.Op
	case "ThrottlingException", "ExecutionLimitExceeded":
		return "the service is throttling requests; lower sfn.start_rate_per_second or try again later"
	case "ExecutionDoesNotExist", "StateMachineDoesNotExist":
		return "the execution or state machine was deleted or lives in another region"
	case "InvalidArn":
		return "pass a full ARN or a name returned by 'paw machines'"
	}

	if strings.Contains(te.Err.Error(), "failed to retrieve credentials") ||
		strings.Contains(te.Err.Error(), "no EC2 IMDS role found") {
		return "no AWS credentials found; set AWS_PROFILE or run 'aws sso login'"
	}
	return ""
}
