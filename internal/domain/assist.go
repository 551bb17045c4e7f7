package domain

// ClarifyRequest is the request body for follow-up question generation.
// @Description Partial reflection text to probe for gaps.
type ClarifyRequest struct {
	Text string `json:"text" validate:"max=5000"`
}

// ClarifyResponse carries up to two follow-up questions.
// @Description Follow-up questions with their source ("gpt", "fallback",
// @Description or "none").
type ClarifyResponse struct {
	Questions []string `json:"questions"`
	Source    string   `json:"source" example:"gpt"`
	Error     string   `json:"error,omitempty"`
}

// CheckTopicsRequest is the request body for topic coverage checks.
// @Description Reflection text to check for required topics.
type CheckTopicsRequest struct {
	Text string `json:"text" validate:"max=5000"`
}

// CheckTopicsResponse lists the required topics a reflection has not yet
// meaningfully covered.
// @Description Missing reflection topics.
type CheckTopicsResponse struct {
	Missing []string `json:"missing" example:"how you slept,what you tried"`
}

// TranscribeResponse carries the recognized text for an audio upload.
// @Description Speech-to-text result.
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
	Error      string `json:"error,omitempty"`
}
