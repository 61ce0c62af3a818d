// Package retry replays failed executions: each selected execution is
// described, its original input recovered, and a new run started with it.
//
// A batch is strictly sequential and fail-fast. The first error stops the
// batch; executions already restarted stay restarted and nothing is rolled
// back. Errors are returned with "item N of M" context only, so the cause
// and its hints stay reachable with errors.Is/As.
package retry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/logger"
	"github.com/teranos/paw/workflow"
)

// OutcomeStatus is the result of one item of a batch.
type OutcomeStatus string

const (
	OutcomeStarted OutcomeStatus = "started"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped" // dry run
)

// Outcome records what happened to one selected execution.
type Outcome struct {
	Execution workflow.ExecutionSummary `json:"execution"`
	Status    OutcomeStatus             `json:"status"`
	// NewExecutionARN is set when Status is OutcomeStarted
	NewExecutionARN string `json:"new_execution_arn,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

// Report summarizes a batch. Outcomes holds attempted items only, in order;
// items after a failure are absent.
type Report struct {
	BatchID  string        `json:"batch_id"`
	Total    int           `json:"total"`
	DryRun   bool          `json:"dry_run"`
	Outcomes []Outcome     `json:"outcomes"`
	Duration time.Duration `json:"duration"`
}

// Started counts items restarted successfully.
func (r Report) Started() int {
	return r.count(OutcomeStarted)
}

// Failed counts failed items.
func (r Report) Failed() int {
	return r.count(OutcomeFailed)
}

// Complete reports whether every selected item was handled without failure.
func (r Report) Complete() bool {
	return len(r.Outcomes) == r.Total && r.Failed() == 0
}

// Skipped counts items validated but not started in a dry run.
func (r Report) Skipped() int {
	return r.count(OutcomeSkipped)
}

func (r Report) count(status OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Option configures a Retrier.
type Option func(*Retrier)

// WithDryRun describes and validates every item without starting anything.
func WithDryRun(dryRun bool) Option {
	return func(r *Retrier) {
		r.dryRun = dryRun
	}
}

// WithLogger overrides the component logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Retrier) {
		r.logger = l
	}
}

// Retrier replays selected executions through a workflow.Client.
type Retrier struct {
	client  workflow.Client
	emitter ProgressEmitter
	dryRun  bool
	logger  *zap.SugaredLogger
}

// New creates a Retrier. A nil emitter discards progress.
func New(client workflow.Client, emitter ProgressEmitter, opts ...Option) *Retrier {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	r := &Retrier{
		client:  client,
		emitter: emitter,
		logger:  logger.ComponentLogger("retry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run restarts catalog.Executions[i] for every i in selected, in selection order.
//
// On the first failure Run stops, records a failed outcome and returns the
// partial report together with the error. Items before the failure have been
// restarted; items after it were never attempted.
func (r *Retrier) Run(ctx context.Context, catalog *workflow.Catalog, selected []int) (report Report, err error) {
	report = Report{
		BatchID:  uuid.NewString(),
		Total:    len(selected),
		DryRun:   r.dryRun,
		Outcomes: make([]Outcome, 0, len(selected)),
	}
	began := time.Now()

	ctx = logger.WithBatchID(ctx, report.BatchID)
	log := logger.LoggerFromContext(ctx, r.logger)
	log.Infow("Retry batch starting",
		logger.FieldMachineName, catalog.Machine.Name,
		logger.FieldTotal, report.Total,
		"dry_run", r.dryRun,
	)

	r.emitter.Begin(report.Total)
	defer func() {
		report.Duration = time.Since(began)
		r.emitter.Finish(report)
	}()

	for i, index := range selected {
		position := i + 1

		execution, err := catalog.At(index)
		if err != nil {
			err = errors.Wrapf(err, "item %d of %d", position, report.Total)
			r.emitter.Fail(position, report.Total, "", err)
			return report, err
		}

		outcome, err := r.replay(ctx, catalog.Machine, execution)
		report.Outcomes = append(report.Outcomes, outcome)
		if err != nil {
			err = errors.Wrapf(err, "item %d of %d", position, report.Total)
			log.Errorw("Retry batch aborted",
				logger.FieldExecutionARN, execution.ARN,
				logger.FieldPosition, position,
				logger.FieldTotal, report.Total,
				logger.FieldError, err,
			)
			r.emitter.Fail(position, report.Total, execution.Name, err)
			return report, err
		}

		log.Debugw("Execution handled",
			logger.FieldExecutionARN, execution.ARN,
			logger.FieldPosition, position,
			"new_execution_arn", outcome.NewExecutionARN,
		)
		r.emitter.Advance(position, report.Total, execution.Name)
	}

	log.Infow("Retry batch complete",
		logger.FieldCount, report.Started(),
		logger.FieldTotal, report.Total,
	)
	return report, nil
}

func (r *Retrier) replay(ctx context.Context, machine workflow.Machine, execution workflow.ExecutionSummary) (Outcome, error) {
	outcome := Outcome{Execution: execution}

	if err := ctx.Err(); err != nil {
		outcome.Status = OutcomeFailed
		outcome.Reason = err.Error()
		return outcome, errors.Wrap(err, "retry interrupted")
	}

	detail, err := r.client.DescribeExecution(ctx, execution.ARN)
	if err != nil {
		outcome.Status = OutcomeFailed
		outcome.Reason = err.Error()
		return outcome, err
	}

	if detail.Input == nil {
		err := errors.WithHint(
			errors.Wrapf(errors.ErrMissingPayload, "%s", execution.Name),
			"the service returned no input for this execution; it cannot be replayed as-is",
		)
		outcome.Status = OutcomeFailed
		outcome.Reason = err.Error()
		return outcome, err
	}

	if r.dryRun {
		outcome.Status = OutcomeSkipped
		return outcome, nil
	}

	started, err := r.client.StartExecution(ctx, targetMachine(detail, execution, machine), *detail.Input)
	if err != nil {
		outcome.Status = OutcomeFailed
		outcome.Reason = err.Error()
		return outcome, err
	}

	outcome.Status = OutcomeStarted
	outcome.NewExecutionARN = started.ARN
	return outcome, nil
}

// targetMachine prefers the machine reported by DescribeExecution, falling
// back to the listing and then to the catalog machine.
func targetMachine(detail workflow.ExecutionDetail, execution workflow.ExecutionSummary, machine workflow.Machine) string {
	switch {
	case detail.MachineARN != "":
		return detail.MachineARN
	case execution.MachineARN != "":
		return execution.MachineARN
	default:
		return machine.ARN
	}
}
