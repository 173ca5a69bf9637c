package domain

// Operation names, used for contextual logging.
const (
	OperationSummarize    = "summarize"
	OperationExtractJSON  = "extract_json"
	OperationAnswer       = "answer"
	OperationGenerateData = "generate_data"
)

// DefaultMaxLength is the summary word budget applied when the caller
// omits max_length.
const DefaultMaxLength = 150

// Confidence labels for question answering.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// CompletionParams holds the generation parameters for a single
// completion call. Read-only after startup.
type CompletionParams struct {
	Model       string
	Temperature float64
}

// SummarizeRequest asks for a summary of Text in at most MaxLength words.
type SummarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length,omitempty"`
}

// SummarizeResponse carries the summary plus character-count metadata.
type SummarizeResponse struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

// ExtractJSONRequest asks for structured data pulled out of Text,
// shaped by a natural-language schema description.
type ExtractJSONRequest struct {
	Text              string `json:"text"`
	SchemaDescription string `json:"schema_description"`
}

// ExtractJSONResponse reports the parsed structure, or a parse error
// inline when the model output was not valid JSON.
type ExtractJSONResponse struct {
	Data    map[string]any `json:"data"`
	Success bool           `json:"success"`
	Error   *string        `json:"error"`
}

// AnswerRequest asks a question against a caller-supplied context document.
type AnswerRequest struct {
	Context  string `json:"context"`
	Question string `json:"question"`
}

// AnswerResponse carries the answer text and a coarse confidence label.
type AnswerResponse struct {
	Answer     string `json:"answer"`
	Confidence string `json:"confidence"`
}

// GenerateDataRequest asks for a synthetic example of DataType matching
// Description.
type GenerateDataRequest struct {
	Description string `json:"description"`
	DataType    string `json:"data_type"`
}

// GenerateDataResponse carries the generated structure. On a parse
// failure Data is empty and Error reports the cause; SchemaUsed is
// always populated.
type GenerateDataResponse struct {
	Data       map[string]any `json:"data"`
	SchemaUsed string         `json:"schema_used"`
	Error      string         `json:"error,omitempty"`
}
