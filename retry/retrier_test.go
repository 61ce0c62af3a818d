package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/workflow"
)

const machineARN = "arn:aws:states:sa-east-1:123456789012:stateMachine:PawMachine"

type startCall struct {
	machineARN string
	input      string
}

// fakeClient describes executions from a map and records every start.
type fakeClient struct {
	inputs       map[string]*string
	describeErr  map[string]error
	startErr     map[string]error
	describeARNs []string
	starts       []startCall
}

func (f *fakeClient) ListMachines(context.Context) ([]workflow.Machine, error) {
	return nil, nil
}

func (f *fakeClient) ListFailedExecutions(context.Context, string, workflow.DateWindow) ([]workflow.ExecutionSummary, error) {
	return nil, nil
}

func (f *fakeClient) DescribeExecution(_ context.Context, arn string) (workflow.ExecutionDetail, error) {
	f.describeARNs = append(f.describeARNs, arn)
	if err := f.describeErr[arn]; err != nil {
		return workflow.ExecutionDetail{}, err
	}
	return workflow.ExecutionDetail{
		ExecutionSummary: workflow.ExecutionSummary{ARN: arn, MachineARN: machineARN},
		Input:            f.inputs[arn],
	}, nil
}

func (f *fakeClient) StartExecution(_ context.Context, machine string, input string) (workflow.StartedExecution, error) {
	if err := f.startErr[input]; err != nil {
		return workflow.StartedExecution{}, err
	}
	f.starts = append(f.starts, startCall{machineARN: machine, input: input})
	return workflow.StartedExecution{ARN: fmt.Sprintf("%s:new-%d", machine, len(f.starts)), StartedAt: time.Now()}, nil
}

// recordingEmitter keeps every event as a string.
type recordingEmitter struct {
	events []string
	report *Report
}

func (e *recordingEmitter) Begin(total int) {
	e.events = append(e.events, fmt.Sprintf("begin %d", total))
}

func (e *recordingEmitter) Advance(position, total int, name string) {
	e.events = append(e.events, fmt.Sprintf("advance %d/%d %s", position, total, name))
}

func (e *recordingEmitter) Fail(position, total int, name string, err error) {
	e.events = append(e.events, fmt.Sprintf("fail %d/%d %s", position, total, name))
}

func (e *recordingEmitter) Finish(report Report) {
	e.events = append(e.events, "finish")
	e.report = &report
}

func payload(s string) *string { return &s }

func newCatalog(names ...string) (*workflow.Catalog, *fakeClient) {
	client := &fakeClient{
		inputs:      map[string]*string{},
		describeErr: map[string]error{},
		startErr:    map[string]error{},
	}
	executions := make([]workflow.ExecutionSummary, len(names))
	for i, name := range names {
		arn := "arn:aws:states:sa-east-1:123456789012:execution:PawMachine:" + name
		executions[i] = workflow.ExecutionSummary{
			ARN:        arn,
			MachineARN: machineARN,
			Name:       name,
			Status:     workflow.StatusFailed,
			StartedAt:  time.Date(2024, time.March, i+1, 0, 0, 0, 0, time.UTC),
		}
		client.inputs[arn] = payload(fmt.Sprintf(`{"item":%q}`, name))
	}
	machine := workflow.Machine{ARN: machineARN, Name: "PawMachine"}
	return workflow.NewCatalog(machine, workflow.DateWindow{}, executions), client
}

func TestRun_StartsEverySelectedItemInOrder(t *testing.T) {
	catalog, client := newCatalog("a", "b", "c")
	emitter := &recordingEmitter{}

	report, err := New(client, emitter).Run(context.Background(), catalog, []int{2, 0})
	require.NoError(t, err)

	assert.Equal(t, []startCall{
		{machineARN: machineARN, input: `{"item":"c"}`},
		{machineARN: machineARN, input: `{"item":"a"}`},
	}, client.starts)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Started())
	assert.Equal(t, 0, report.Failed())
	assert.True(t, report.Complete())
	assert.NotEmpty(t, report.BatchID)
	assert.Equal(t, machineARN+":new-1", report.Outcomes[0].NewExecutionARN)

	assert.Equal(t, []string{"begin 2", "advance 1/2 c", "advance 2/2 a", "finish"}, emitter.events)
	require.NotNil(t, emitter.report)
	assert.Equal(t, report.BatchID, emitter.report.BatchID)
}

func TestRun_FailFastLeavesEarlierStarts(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	for k := 1; k <= len(names); k++ {
		t.Run(fmt.Sprintf("fails at %d", k), func(t *testing.T) {
			catalog, client := newCatalog(names...)
			failing := catalog.Executions[k-1]
			client.startErr[*client.inputs[failing.ARN]] = errors.Mark(errors.New("boom"), errors.ErrTransport)

			report, err := New(client, nil).Run(context.Background(), catalog, []int{0, 1, 2, 3, 4})
			require.Error(t, err)

			assert.Len(t, client.starts, k-1)
			assert.Len(t, report.Outcomes, k)
			assert.Equal(t, k-1, report.Started())
			assert.Equal(t, 1, report.Failed())
			assert.Equal(t, OutcomeFailed, report.Outcomes[k-1].Status)
			assert.Contains(t, err.Error(), fmt.Sprintf("item %d of 5", k))
			assert.True(t, errors.IsTransportError(err))
		})
	}
}

func TestRun_SecondDescribeFailureStopsBatch(t *testing.T) {
	catalog, client := newCatalog("one", "two", "three")
	cause := errors.Mark(errors.New("ExecutionDoesNotExist"), errors.ErrTransport)
	client.describeErr[catalog.Executions[1].ARN] = cause
	emitter := &recordingEmitter{}

	report, err := New(client, emitter).Run(context.Background(), catalog, []int{0, 1, 2})
	require.Error(t, err)

	assert.Len(t, client.starts, 1)
	assert.Equal(t, []string{catalog.Executions[0].ARN, catalog.Executions[1].ARN}, client.describeARNs)
	assert.Equal(t, "item 2 of 3: ExecutionDoesNotExist", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, []string{"begin 3", "advance 1/3 one", "fail 2/3 two", "finish"}, emitter.events)
	assert.Equal(t, "ExecutionDoesNotExist", report.Outcomes[1].Reason)
}

func TestRun_MissingPayloadAbortsBatch(t *testing.T) {
	catalog, client := newCatalog("a", "b", "c")
	client.inputs[catalog.Executions[1].ARN] = nil

	report, err := New(client, nil).Run(context.Background(), catalog, []int{0, 1, 2})
	require.Error(t, err)

	assert.True(t, errors.Is(err, errors.ErrMissingPayload))
	assert.False(t, errors.IsTransportError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
	assert.Len(t, client.starts, 1)
	assert.Equal(t, 1, report.Failed())
}

func TestRun_EmptyPayloadIsReplayed(t *testing.T) {
	catalog, client := newCatalog("a")
	client.inputs[catalog.Executions[0].ARN] = payload("")

	_, err := New(client, nil).Run(context.Background(), catalog, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []startCall{{machineARN: machineARN, input: ""}}, client.starts)
}

func TestRun_IndexOutOfRange(t *testing.T) {
	catalog, client := newCatalog("a", "b")

	report, err := New(client, nil).Run(context.Background(), catalog, []int{0, 7})
	require.Error(t, err)

	assert.True(t, errors.IsInvalidRequestError(err))
	assert.Len(t, client.starts, 1)
	assert.Len(t, client.describeARNs, 1)
	assert.Len(t, report.Outcomes, 1)
	assert.Zero(t, report.Failed())
	assert.False(t, report.Complete())
}

func TestRun_LogsCarryBatchID(t *testing.T) {
	catalog, client := newCatalog("a", "b")
	client.describeErr[catalog.Executions[1].ARN] = errors.New("ExecutionDoesNotExist")

	core, logs := observer.New(zap.DebugLevel)
	report, err := New(client, nil, WithLogger(zap.New(core).Sugar())).Run(context.Background(), catalog, []int{0, 1})
	require.Error(t, err)

	require.Equal(t, 1, logs.FilterMessage("Retry batch starting").Len())
	aborted := logs.FilterMessage("Retry batch aborted").All()
	require.Len(t, aborted, 1)
	fields := aborted[0].ContextMap()
	assert.Equal(t, report.BatchID, fields["batch_id"])
	assert.Equal(t, catalog.Executions[1].ARN, fields["execution_arn"])
	assert.EqualValues(t, 2, fields["position"])
	assert.Zero(t, logs.FilterMessage("Retry batch complete").Len())
}

func TestRun_DryRunNeverStarts(t *testing.T) {
	catalog, client := newCatalog("a", "b")

	report, err := New(client, nil, WithDryRun(true)).Run(context.Background(), catalog, []int{0, 1})
	require.NoError(t, err)

	assert.Empty(t, client.starts)
	assert.Len(t, client.describeARNs, 2)
	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Skipped())
	assert.Equal(t, 0, report.Started())
}

func TestRun_EmptySelection(t *testing.T) {
	catalog, client := newCatalog("a")
	emitter := &recordingEmitter{}

	report, err := New(client, emitter).Run(context.Background(), catalog, nil)
	require.NoError(t, err)

	assert.Zero(t, report.Total)
	assert.Empty(t, client.describeARNs)
	assert.Equal(t, []string{"begin 0", "finish"}, emitter.events)
}

func TestRun_CancelledContext(t *testing.T) {
	catalog, client := newCatalog("a", "b")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(client, nil).Run(ctx, catalog, []int{0, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, client.describeARNs)
}

func TestTargetMachine(t *testing.T) {
	machine := workflow.Machine{ARN: "catalog"}
	listed := workflow.ExecutionSummary{MachineARN: "listed"}
	described := workflow.ExecutionDetail{ExecutionSummary: workflow.ExecutionSummary{MachineARN: "described"}}

	assert.Equal(t, "described", targetMachine(described, listed, machine))
	assert.Equal(t, "listed", targetMachine(workflow.ExecutionDetail{}, listed, machine))
	assert.Equal(t, "catalog", targetMachine(workflow.ExecutionDetail{}, workflow.ExecutionSummary{}, machine))
}
