package pipeline

// Step categories
const (
	CategoryAnalysis = "analysis"
	CategorySearch   = "search"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

func emit(cb ProgressCallback, category, step, message string) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Category: category, Message: message})
	}
}
