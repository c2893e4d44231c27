package testutil

// MockPhraser is a mock implementation of the library.Phraser interface
// for testing the session dispatcher.
type MockPhraser struct {
	LoadFunc          func(dirs, order, disable []string) error
	ProcessPhraseFunc func(phrase string, interactive bool) error

	// Processed records every phrase handed to ProcessPhrase, in order
	Processed []string
}

// Load calls LoadFunc if set, otherwise succeeds.
func (m *MockPhraser) Load(dirs, order, disable []string) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(dirs, order, disable)
	}
	return nil
}

// ProcessPhrase records the phrase, then defers to ProcessPhraseFunc.
func (m *MockPhraser) ProcessPhrase(phrase string, interactive bool) error {
	m.Processed = append(m.Processed, phrase)
	if m.ProcessPhraseFunc != nil {
		return m.ProcessPhraseFunc(phrase, interactive)
	}
	return nil
}

// ScriptReader is a ReadLiner fed from a fixed phrase list; once the
// list is exhausted it reports end-of-input.
type ScriptReader struct {
	Phrases []string

	// Prompts records every prompt the reader was shown
	Prompts []string

	next int
}

// Read returns the next scripted phrase.
func (s *ScriptReader) Read(prompt string) (string, bool) {
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.Phrases) {
		return "", false
	}
	phrase := s.Phrases[s.next]
	s.next++
	return phrase, true
}
