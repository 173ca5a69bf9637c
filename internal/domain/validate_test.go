package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/domain"
)

func TestSummarizeRequest_Validate(t *testing.T) {
	t.Run("missing text", func(t *testing.T) {
		req := &domain.SummarizeRequest{}

		err := req.Validate()

		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Equal(t, []string{"text"}, valErr.Fields)
	})

	t.Run("applies max_length default", func(t *testing.T) {
		req := &domain.SummarizeRequest{Text: "some text"}

		require.NoError(t, req.Validate())
		require.Equal(t, domain.DefaultMaxLength, req.MaxLength)
	})

	t.Run("keeps explicit max_length", func(t *testing.T) {
		req := &domain.SummarizeRequest{Text: "some text", MaxLength: 42}

		require.NoError(t, req.Validate())
		require.Equal(t, 42, req.MaxLength)
	})
}

func TestExtractJSONRequest_Validate(t *testing.T) {
	t.Run("missing both fields", func(t *testing.T) {
		req := &domain.ExtractJSONRequest{}

		err := req.Validate()

		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Equal(t, []string{"text", "schema_description"}, valErr.Fields)
	})

	t.Run("missing schema_description only", func(t *testing.T) {
		req := &domain.ExtractJSONRequest{Text: "some text"}

		err := req.Validate()

		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Equal(t, []string{"schema_description"}, valErr.Fields)
	})

	t.Run("valid", func(t *testing.T) {
		req := &domain.ExtractJSONRequest{Text: "some text", SchemaDescription: "a schema"}

		require.NoError(t, req.Validate())
	})
}

func TestAnswerRequest_Validate(t *testing.T) {
	t.Run("missing question", func(t *testing.T) {
		req := &domain.AnswerRequest{Context: "a context"}

		err := req.Validate()

		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Equal(t, []string{"question"}, valErr.Fields)
	})

	t.Run("valid", func(t *testing.T) {
		req := &domain.AnswerRequest{Context: "a context", Question: "a question"}

		require.NoError(t, req.Validate())
	})
}

func TestGenerateDataRequest_Validate(t *testing.T) {
	t.Run("missing data_type", func(t *testing.T) {
		req := &domain.GenerateDataRequest{Description: "a description"}

		err := req.Validate()

		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Equal(t, []string{"data_type"}, valErr.Fields)
	})

	t.Run("valid", func(t *testing.T) {
		req := &domain.GenerateDataRequest{Description: "a description", DataType: "person"}

		require.NoError(t, req.Validate())
	})
}
