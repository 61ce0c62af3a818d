package retry

// ProgressEmitter receives batch progress from a Retrier.
//
// Calls arrive on the Retrier's goroutine in this order: Begin once, then
// Advance per started item until the batch ends or one Fail, then Finish
// once with whatever report was accumulated.
type ProgressEmitter interface {
	// Begin announces a batch of total items
	Begin(total int)

	// Advance announces that the item at position (1-based) was handled
	Advance(position, total int, name string)

	// Fail announces the error that aborted the batch at position
	Fail(position, total int, name string, err error)

	// Finish closes the batch
	Finish(report Report)
}

// NopEmitter discards every event.
type NopEmitter struct{}

func (NopEmitter) Begin(int) {}
func (NopEmitter) Advance(int, int, string) {}
func (NopEmitter) Fail(int, int, string, error) {}
func (NopEmitter) Finish(Report) {}

var _ ProgressEmitter = NopEmitter{}
