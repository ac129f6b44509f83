package runner

import (
	"context"
	"time"
)

// Event progress of a streamed run
type Event struct {
	Type      string      `json:"type"` // start/progress/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// Stream runs Process in a goroutine and reports progress on the returned
// channel, which is closed after the done or error event. The Result of a
// done event is carried in Data.
func (r *Runner) Stream(ctx context.Context, runID, inputPath, variant string) <-chan Event {
	ch := make(chan Event, 16)

	go func() {
		defer close(ch)

		send := func(e Event) {
			sendEvent(ctx, ch, e)
		}

		send(Event{
			Type:    "start",
			Message: "processing started",
			Data:    map[string]any{"runId": runID, "variant": variant},
		})

		lastPercent := -1
		progress := func(percent int, stage string) {
			if percent == lastPercent {
				return
			}
			lastPercent = percent
			send(Event{
				Type:    "progress",
				Message: stage,
				Data:    map[string]any{"percent": percent},
			})
		}

		result, err := r.process(ctx, runID, inputPath, variant, progress)
		if err != nil {
			send(Event{
				Type:    "error",
				Message: err.Error(),
				Data:    map[string]any{"code": ErrorKind(err)},
			})
			return
		}

		r.deliver(ctx, ch, result)
	}()

	return ch
}

// sendEvent reports whether e reached the channel before ctx ended
func sendEvent(ctx context.Context, ch chan<- Event, e Event) bool {
	e.Timestamp = time.Now()
	select {
	case ch <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

// deliver sends the done event; a result nobody received is discarded.
func (r *Runner) deliver(ctx context.Context, ch chan<- Event, result *Result) {
	ok := sendEvent(ctx, ch, Event{
		Type:    "done",
		Message: "report ready",
		Data:    result,
	})
	if !ok {
		r.log.Debug().Str("run_id", result.RunID).Msg("done event dropped, discarding result")
		r.Discard(result)
	}
}
