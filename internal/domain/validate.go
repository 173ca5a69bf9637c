package domain

// Validate checks required fields and applies the max_length default.
func (r *SummarizeRequest) Validate() error {
	if r.Text == "" {
		return NewValidationError("text")
	}

	if r.MaxLength <= 0 {
		r.MaxLength = DefaultMaxLength
	}

	return nil
}

// Validate checks required fields.
func (r *ExtractJSONRequest) Validate() error {
	fields := make([]string, 0, 2)

	if r.Text == "" {
		fields = append(fields, "text")
	}
	if r.SchemaDescription == "" {
		fields = append(fields, "schema_description")
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}

	return nil
}

// Validate checks required fields.
func (r *AnswerRequest) Validate() error {
	fields := make([]string, 0, 2)

	if r.Context == "" {
		fields = append(fields, "context")
	}
	if r.Question == "" {
		fields = append(fields, "question")
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}

	return nil
}

// Validate checks required fields.
func (r *GenerateDataRequest) Validate() error {
	fields := make([]string, 0, 2)

	if r.Description == "" {
		fields = append(fields, "description")
	}
	if r.DataType == "" {
		fields = append(fields, "data_type")
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}

	return nil
}
