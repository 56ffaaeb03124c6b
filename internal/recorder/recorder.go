package recorder

// FetchEvent records the outcome of one successful symbol fetch.
type FetchEvent struct {
	Symbol  string
	Ticker  string
	Records int
	First   string // YYYY-MM-DD
	Last    string
}

// RunSnapshot records one completed pipeline run.
type RunSnapshot struct {
	StartDate    string
	EndDate      string
	TotalRecords int
	OutputPath   string
}

// Recorder persists fetch and run history for auditing.
type Recorder interface {
	RecordFetch(evt *FetchEvent) error
	RecordRun(snap *RunSnapshot) error
	Close() error
}
