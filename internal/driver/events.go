package driver

import "time"

// Stage describes a per-file pipeline phase.
type Stage string

const (
	StageParse  Stage = "parse"
	StageFormat Stage = "format"
	StageLint   Stage = "lint"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusDone indicates the file is finished.
	StatusDone Status = "done"
	// StatusError indicates the file failed; Err holds the cause.
	StatusError Status = "error"
)

// Event reports progress for a file, or for the whole batch when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; batch workers report from their own goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

func emitQueued(sink ProgressSink, files []string) {
	for _, f := range files {
		emit(sink, Event{File: f, Status: StatusQueued})
	}
}

// finish reports the terminal event of a file.
func finish(sink ProgressSink, file string, stage Stage, err error, started time.Time) {
	status := StatusDone
	if err != nil {
		status = StatusError
	}
	emit(sink, Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: time.Since(started)})
}
