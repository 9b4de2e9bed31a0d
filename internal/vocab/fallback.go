package vocab

// FallbackWord returns the built-in substitute word used when a
// single-word replacement fetch fails. Returned by value so callers can
// never alias the options slice.
func FallbackWord() Word {
	return Word{
		Word:         "Resilient",
		Definition:   "Able to withstand or recover quickly from difficult conditions.",
		Example:      "The economy proved to be resilient despite the global crisis.",
		Phonetic:     "/rɪˈzɪliənt/",
		QuizSentence: "She is " + BlankMarker + " and never gives up easily.",
		Options:      []string{"resilient", "reticent", "redundant", "resplendent"},
	}
}
