package drill

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// RunID uniquely identifies one invocation of the runner.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type RunID uuid.UUID

// String renders the run ID in canonical UUID form.
func (id RunID) String() string { return uuid.UUID(id).String() }

// NewRunID returns a fresh random run identifier.
func NewRunID() RunID { return RunID(uuid.New()) }

// Topic groups drills by the study area they illustrate.
type Topic string

const (
	// TopicErrors covers catching and reporting the standard failure kinds.
	TopicErrors Topic = "errors"
	// TopicFiles covers line-oriented file reading and writing.
	TopicFiles Topic = "files"
	// TopicLogging covers structured logging and rotating file sinks.
	TopicLogging Topic = "logging"
	// TopicMemory covers the memory and concurrency definitions; these
	// drills are prose-only since the source material defines the concepts
	// without implementing them.
	TopicMemory Topic = "memory"
)

// Env carries the per-run environment a drill body may use. Workdir is a
// private scratch directory; files a drill creates there never collide with
// other drills or earlier runs.
type Env struct {
	Workdir string
}

// RunFunc is the executable body of a drill. It writes its human-readable
// output to w. Failures the snippet is about are handled inside the body and
// reported on w; an error return means the drill itself is broken.
type RunFunc func(ctx context.Context, w io.Writer, env Env) error

// Drill is one self-contained study snippet: identification, the
// question/answer prose it teaches, and a runnable demonstration.
type Drill struct {
	// ID is the unique slug of the drill, e.g. "errors/divide".
	ID string
	// Topic is the study area the drill belongs to.
	Topic Topic
	// Question is the interview-style prompt the drill answers.
	Question string
	// Answer is the explanation of the concept being demonstrated.
	Answer string
	// Run demonstrates the concept. Nil for prose-only drills.
	Run RunFunc
}

// Runnable reports whether the drill has an executable body.
func (d Drill) Runnable() bool { return d.Run != nil }

// Result records the outcome of running a single drill.
type Result struct {
	// DrillID identifies the drill that ran.
	DrillID string
	// Output is everything the drill wrote during its run.
	Output string
	// Err is non-nil when the drill itself failed (including recovered
	// panics), as opposed to the failures it demonstrates and handles.
	Err error
	// Duration is the wall-clock time the drill took.
	Duration time.Duration
}

// Failed reports whether the drill ended in error.
func (r Result) Failed() bool { return r.Err != nil }

// Report aggregates the results of one runner invocation.
type Report struct {
	// RunID is the unique identifier of this invocation.
	RunID RunID
	// Started is when the run began.
	Started time.Time
	// Results holds one entry per executed drill, in execution order.
	Results []Result
}

// Failed returns the number of drills that ended in error.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}

	return n
}
