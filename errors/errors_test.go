package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	original := New("connection reset by peer")
	wrapped := Wrap(original, "DescribeExecution")

	assert.Equal(t, "DescribeExecution: connection reset by peer", wrapped.Error())
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrMissingPayload, "item %d of %d", 2, 3)

	assert.Contains(t, wrapped.Error(), "item 2 of 3")
	assert.True(t, Is(wrapped, ErrMissingPayload))
}

type throttled struct{}

func (throttled) Error() string { return "ThrottlingException: rate exceeded" }

func TestAsThroughWrapping(t *testing.T) {
	err := Wrap(Wrap(throttled{}, "StartExecution"), "item 1 of 1")

	var target throttled
	require.True(t, As(err, &target))
	assert.Equal(t, "ThrottlingException: rate exceeded", target.Error())
}

func TestSentinelPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transport bool
		notFound  bool
		invalid   bool
	}{
		{name: "nil", err: nil},
		{name: "transport", err: Wrap(ErrTransport, "ListExecutions"), transport: true},
		{name: "not found", err: NewNotFoundError("machine %q", "PawMachine"), notFound: true},
		{name: "invalid request", err: NewInvalidRequestError("index %d out of range", 7), invalid: true},
		{name: "unrelated", err: New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transport, IsTransportError(tt.err))
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.invalid, IsInvalidRequestError(tt.err))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NewNotFoundError("state machine %q", "PawMachine")
	assert.Contains(t, err.Error(), `state machine "PawMachine"`)
	assert.Contains(t, err.Error(), "not found")
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrTransport, "check AWS_PROFILE and AWS_REGION")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "check AWS_PROFILE and AWS_REGION", hints[0])
	assert.True(t, Is(err, ErrTransport))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestErrorChaining(t *testing.T) {
	err := Wrap(ErrParse, `"1989-09-30"`)
	err = WithHint(err, "expected YYYY-MM-DD HH:MM:SS ±HH:MM")
	err = WithDetail(err, "start date")
	err = Wrap(err, "prompt")

	assert.True(t, Is(err, ErrParse))
	assert.Contains(t, err.Error(), "prompt")
	assert.Contains(t, err.Error(), "parse error")
	assert.Contains(t, GetAllHints(err), "expected YYYY-MM-DD HH:MM:SS ±HH:MM")
	assert.Contains(t, GetAllDetails(err), "start date")
}

func ExampleWrap() {
	err := Wrap(ErrMissingPayload, "item 2 of 3")
	fmt.Println(err)
	// Output: item 2 of 3: execution has no input payload
}

func ExampleWithHint() {
	err := WithHint(New("ExpiredToken"), "refresh your SSO session with `aws sso login`")

	hints := GetAllHints(err)
	fmt.Println(hints[0])
	// Output: refresh your SSO session with `aws sso login`
}
