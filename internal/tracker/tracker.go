// Package tracker feeds sensor packages through the dispatcher and prints their summaries.
package tracker

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/fittracker/internal/domain"
	"example.com/fittracker/internal/observability"
)

// Package is one raw reading from the tracker: a workout type code and its parameters.
type Package struct {
	Code   string
	Params []float64
}

// DemoPackages returns the fixed demonstration run.
func DemoPackages() []Package {
	return []Package{
		{Code: domain.CodeSwimming, Params: []float64{720, 1, 80, 25, 40}},
		{Code: domain.CodeRunning, Params: []float64{15000, 1, 75}},
		{Code: domain.CodeWalking, Params: []float64{9000, 1, 75, 180}},
	}
}

// Option configures optional behaviour for the Runner.
type Option func(*Runner)

// WithLogger overrides the logger used to report progress and failures.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithClock overrides the time source used for the summary watermark.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// Runner processes packages one at a time and writes a report line per workout.
type Runner struct {
	out    io.Writer
	logger *log.Logger
	now    func() time.Time
}

// NewRunner constructs a Runner writing reports to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:    out,
		logger: log.New(log.Writer(), "[tracker] ", log.LstdFlags|log.Lshortfile),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes packages in order. The first failing package aborts the run;
// reports already written stay in the output.
func (r *Runner) Run(packages []Package) error {
	runID := uuid.NewString()
	r.logger.Printf("run started (run_id=%s, packages=%d)", runID, len(packages))

	for i, pkg := range packages {
		workout, err := domain.Dispatch(pkg.Code, pkg.Params)
		if err != nil {
			observability.RecordDispatchFailure(err)
			r.logger.Printf("run aborted (run_id=%s, package=%d, code=%q): %v", runID, i, pkg.Code, err)
			return fmt.Errorf("package %d: %w", i, err)
		}

		summary := workout.Summarize()
		if _, err := fmt.Fprintln(r.out, summary.Message()); err != nil {
			return fmt.Errorf("write report for package %d: %w", i, err)
		}
		observability.RecordSummary(summary.Kind, r.now().UTC())
	}

	r.logger.Printf("run finished (run_id=%s)", runID)
	return nil
}
