package engine

// Status is the result of advancing a task by one tick
type Status uint8

const (
	Continue Status = iota
	Done
)

func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "continue"
}

// Task is a resumable animation state machine
// Step advances it by exactly one tick; progress lives in the task's own fields
type Task interface {
	Step() Status
}

// TaskFunc adapts a function to Task
type TaskFunc func() Status

func (f TaskFunc) Step() Status {
	return f()
}

// Refresher flushes the composited surface once per tick
type Refresher interface {
	Refresh()
}
