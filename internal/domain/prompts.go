package domain

import "fmt"

// Prompt templates. Each builder is a pure function of the validated
// request, so identical input always renders the identical prompt.
// The templates instruct the model to answer in a constrained way;
// parsing downstream relies on that, not on any local enforcement.

const summarizePromptTemplate = `Summarize the following text in approximately %d words or less.

Text:
%s

Provide only the summary, nothing else.`

const extractJSONPromptTemplate = `Extract the following information from the text and return it as valid JSON.

Schema requirements:
%s

Text:
%s

Return ONLY valid JSON, no additional text.`

const answerPromptTemplate = `Based on the following context, answer the question.

Context:
%s

Question:
%s

Provide a clear and concise answer.`

const generateDataPromptTemplate = `Generate a realistic example of a %s with the following characteristics:
%s

Return as valid JSON with appropriate fields for a %s. Include all relevant fields.
Return ONLY valid JSON, no additional text.`

// BuildSummarizePrompt renders the summarization instruction.
func BuildSummarizePrompt(req *SummarizeRequest) string {
	return fmt.Sprintf(summarizePromptTemplate, req.MaxLength, req.Text)
}

// BuildExtractJSONPrompt renders the extraction instruction.
func BuildExtractJSONPrompt(req *ExtractJSONRequest) string {
	return fmt.Sprintf(extractJSONPromptTemplate, req.SchemaDescription, req.Text)
}

// BuildAnswerPrompt renders the question-answering instruction.
func BuildAnswerPrompt(req *AnswerRequest) string {
	return fmt.Sprintf(answerPromptTemplate, req.Context, req.Question)
}

// BuildGenerateDataPrompt renders the data-generation instruction.
func BuildGenerateDataPrompt(req *GenerateDataRequest) string {
	return fmt.Sprintf(generateDataPromptTemplate, req.DataType, req.Description, req.DataType)
}
