package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/logger"
	"github.com/teranos/paw/retry"
	"github.com/teranos/paw/workflow"
)

func sampleCatalog() *workflow.Catalog {
	machine := workflow.Machine{ARN: "arn:aws:states:sa-east-1:123456789012:stateMachine:PawMachine", Name: "PawMachine"}
	return workflow.NewCatalog(machine, workflow.DateWindow{}, []workflow.ExecutionSummary{
		{ARN: machine.ARN + ":a", Name: "a", StartedAt: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)},
		{ARN: machine.ARN + ":b", Name: "b", StartedAt: time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC)},
	})
}

func TestProgressTitle(t *testing.T) {
	assert.Equal(t, "(2 of 5) ID: exec-2", ProgressTitle(2, 5, "exec-2"))
}

func TestProgressBar_RendersTitles(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	bar := NewProgressBarWithWriter(&buf)

	bar.Begin(2)
	bar.Advance(1, 2, "a")
	bar.Advance(2, 2, "b")
	bar.Finish(retry.Report{Total: 2})

	assert.Contains(t, buf.String(), "(1 of 2) ID: a")
	assert.Contains(t, buf.String(), "(2 of 2) ID: b")
	assert.Nil(t, bar.bar)
}

func TestProgressBar_EmptyBatchDrawsNothing(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBarWithWriter(&buf)

	bar.Begin(0)
	bar.Advance(1, 0, "ignored")
	bar.Fail(1, 0, "ignored", errors.New("x"))
	bar.Finish(retry.Report{})

	assert.Empty(t, buf.String())
}

func TestProgressBar_Fail(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	bar := NewProgressBarWithWriter(&buf)

	bar.Begin(3)
	bar.Advance(1, 3, "a")
	bar.Fail(2, 3, "b", errors.New("boom"))
	bar.Finish(retry.Report{Total: 3})

	assert.Contains(t, buf.String(), "(2 of 3) ID: b failed")
}

func TestCatalogTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	table, err := CatalogTable(sampleCatalog())
	require.NoError(t, err)
	assert.Contains(t, table, "STARTED (UTC)")
	assert.Contains(t, table, "2024-03-02T12:00:00Z")
}

func TestPrintCatalog(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	require.NoError(t, PrintCatalog(&buf, sampleCatalog()))
	assert.Contains(t, buf.String(), "2 failed executions of PawMachine in […, …]")

	buf.Reset()
	empty := workflow.NewCatalog(workflow.Machine{Name: "PawMachine"}, workflow.DateWindow{}, nil)
	require.NoError(t, PrintCatalog(&buf, empty))
	assert.Equal(t, "No failed executions of PawMachine in […, …]\n", buf.String())
}

func TestMachinesTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	table, err := MachinesTable([]workflow.Machine{{ARN: "arn:m", Name: "PawMachine"}})
	require.NoError(t, err)
	assert.Contains(t, table, "PawMachine")
	assert.Contains(t, table, "arn:m")
}

func TestReportSummary(t *testing.T) {
	report := retry.Report{Total: 3, Outcomes: []retry.Outcome{
		{Status: retry.OutcomeStarted},
		{Status: retry.OutcomeFailed},
	}}
	assert.Equal(t, "Restarted 1 of 3 executions", ReportSummary(report))

	dry := retry.Report{Total: 2, DryRun: true, Outcomes: []retry.Outcome{
		{Status: retry.OutcomeSkipped},
		{Status: retry.OutcomeSkipped},
	}}
	assert.Equal(t, "Dry run: 2 of 2 executions can be restarted", ReportSummary(dry))
}

func TestPrintReport(t *testing.T) {
	var done bytes.Buffer
	PrintReport(&done, retry.Report{Total: 1, Outcomes: []retry.Outcome{{Status: retry.OutcomeStarted}}})
	assert.Contains(t, done.String(), "SUCCESS")
	assert.Contains(t, done.String(), "Restarted 1 of 1 executions")

	var failed bytes.Buffer
	PrintReport(&failed, retry.Report{Total: 2, Outcomes: []retry.Outcome{
		{Status: retry.OutcomeStarted},
		{Status: retry.OutcomeFailed},
	}})
	assert.Contains(t, failed.String(), "WARNING")

	// aborted on a bad index: nothing failed, but the batch is short
	var short bytes.Buffer
	PrintReport(&short, retry.Report{Total: 2, Outcomes: []retry.Outcome{{Status: retry.OutcomeStarted}}})
	assert.Contains(t, short.String(), "WARNING")
	assert.Contains(t, short.String(), "Restarted 1 of 2 executions")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, workflow.Machine{ARN: "arn:m", Name: "m"}))
	assert.JSONEq(t, `{"arn":"arn:m","name":"m"}`, buf.String())

	t.Setenv("PAW_JSON_COMPACT", "1")
	buf.Reset()
	require.NoError(t, WriteJSON(&buf, workflow.Machine{ARN: "arn:m", Name: "m"}))
	assert.Equal(t, "{\"arn\":\"arn:m\",\"name\":\"m\"}\n", buf.String())

	err := WriteJSON(&buf, make(chan int))
	assert.Error(t, err)
}

func TestShouldOutputJSON(t *testing.T) {
	defer func() { logger.JSONOutput = false }()

	cmd := &cobra.Command{Use: "machines"}
	cmd.Flags().Bool("json", false, "")

	assert.False(t, ShouldOutputJSON(cmd))

	logger.JSONOutput = true
	assert.True(t, ShouldOutputJSON(cmd))
	assert.True(t, ShouldOutputJSON(nil))

	require.NoError(t, cmd.Flags().Set("json", "false"))
	assert.False(t, ShouldOutputJSON(cmd))

	require.NoError(t, cmd.Flags().Set("json", "true"))
	logger.JSONOutput = false
	assert.True(t, ShouldOutputJSON(cmd))
}
