package wordgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated word. They execute in order; the first failure stops
	// the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. A batch of
	// ten words with sentences and options needs a few thousand.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxExclude is the maximum number of seen words to list in the
	// prompt as a "do not repeat" hint. The most recent ones win.
	MaxExclude int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ExclusionValidator{},
		},
		MaxTokens:   4096,
		Temperature: 0.7,
		MaxExclude:  50,
	}
}
