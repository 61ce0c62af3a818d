// Package workflow holds the state-machine execution model shared by the
// Step Functions adapter, the retry orchestrator and the CLI actions.
package workflow

import (
	"fmt"
	"time"
)

// ExecutionStatus mirrors the Step Functions execution status values.
type ExecutionStatus string

const (
	StatusRunning        ExecutionStatus = "RUNNING"
	StatusSucceeded      ExecutionStatus = "SUCCEEDED"
	StatusFailed         ExecutionStatus = "FAILED"
	StatusTimedOut       ExecutionStatus = "TIMED_OUT"
	StatusAborted        ExecutionStatus = "ABORTED"
	StatusPendingRedrive ExecutionStatus = "PENDING_REDRIVE"
)

// Machine is a registered state machine. Identity is the ARN.
type Machine struct {
	ARN  string `json:"arn"`
	Name string `json:"name"`
}

// String returns the display form, the machine name.
func (m Machine) String() string {
	return m.Name
}

// ExecutionSummary is one entry of an execution listing. Listings never carry payloads.
type ExecutionSummary struct {
	ARN        string          `json:"arn"`
	MachineARN string          `json:"machine_arn"`
	Name       string          `json:"name"`
	Status     ExecutionStatus `json:"status"`
	StartedAt  time.Time       `json:"started_at"`
}

// String returns the checklist display form: "<name> : <start time UTC>".
func (e ExecutionSummary) String() string {
	return fmt.Sprintf("%s : %s", e.Name, e.StartedAt.UTC().Format(time.RFC3339))
}

// ExecutionDetail is an execution as returned by DescribeExecution.
// Input is nil when the service returned no payload.
type ExecutionDetail struct {
	ExecutionSummary
	Input     *string    `json:"input,omitempty"`
	Output    *string    `json:"output,omitempty"`
	StoppedAt *time.Time `json:"stopped_at,omitempty"`
}

// Summary returns the listing view of the detail.
func (d ExecutionDetail) Summary() ExecutionSummary {
	return d.ExecutionSummary
}

// StartedExecution identifies the run created by StartExecution.
type StartedExecution struct {
	ARN       string    `json:"arn"`
	StartedAt time.Time `json:"started_at"`
}
