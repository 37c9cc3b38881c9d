package sanitizer

// Result is the outcome of Sanitize.
// When Safe is false, Cleaned holds the original input and must not be processed.
type Result struct {
	Safe    bool   `json:"is_safe"`
	Cleaned string `json:"cleaned_text"`
	Warning string `json:"warning,omitempty"`
}
