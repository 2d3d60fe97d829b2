package modelspec

import (
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
)

// JobState is the wire-level job lifecycle enum from §6. Values are
// pinned to match JobState proto enum values exactly.
type JobState uint32

var EJobState = JobState(0)

func (JobState) Unspecified() JobState { return JobState(0) }
func (JobState) Queued() JobState      { return JobState(1) }
func (JobState) Running() JobState     { return JobState(2) }
func (JobState) Completed() JobState   { return JobState(3) }
func (JobState) Failed() JobState      { return JobState(4) }
func (JobState) Cancelled() JobState   { return JobState(5) }

func (s JobState) String() string {
	return enum.StringInt(s, reflect.TypeOf(s))
}

// Terminal reports whether s is one of {COMPLETED, FAILED, CANCELLED}; I3.
func (s JobState) Terminal() bool {
	return s == EJobState.Completed() || s == EJobState.Failed() || s == EJobState.Cancelled()
}
