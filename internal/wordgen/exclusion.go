package wordgen

import "vocadrill/internal/vocab"

// ExclusionValidator rejects words the learner has already seen. The
// prompt asks the model to avoid them, but models drift; this is the
// hard backstop.
type ExclusionValidator struct{}

func (v *ExclusionValidator) Name() string { return "exclusion" }

func (v *ExclusionValidator) Validate(w vocab.Word, input GenerateInput) *ValidationError {
	for _, seen := range input.Exclude {
		if vocab.Match(w.Word, seen) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "word was already seen: " + w.Word,
				Retryable: true,
			}
		}
	}
	return nil
}
