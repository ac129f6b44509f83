package exporter

// ProgressEvent export progress for the UI
type ProgressEvent struct {
	Percent int    `json:"percent"`
	Stage   string `json:"stage"`
}

// Progress receives export progress; a nil Progress drops events.
type Progress func(ProgressEvent)

func (p Progress) report(percent int, stage string) {
	if p == nil {
		return
	}
	p(ProgressEvent{
		Percent: clampPercent(percent),
		Stage:   stage,
	})
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
