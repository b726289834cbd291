// SPDX-License-Identifier: MPL-2.0

package grammar

const (
	// EngineChart selects the Earley chart matcher.
	EngineChart Engine = "chart"
	// EngineRecursive selects the fixed-length recursive matcher.
	EngineRecursive Engine = "recursive"
)

type (
	// Engine names a matcher implementation.
	// The zero value ("") selects EngineChart.
	Engine string

	// Matcher decides whether a message is fully accepted by rule 0.
	// Implementations hold no per-call state and are safe for concurrent use.
	Matcher interface {
		Accepts(msg string) bool
	}
)

// Engines returns the valid engine names.
func Engines() []Engine {
	return []Engine{EngineChart, EngineRecursive}
}

// Validate returns an error if the engine is not recognized.
func (e Engine) Validate() error {
	switch e {
	case "", EngineChart, EngineRecursive:
		return nil
	default:
		return &InvalidEngineError{Value: e}
	}
}

// String returns the engine name, resolving the zero value to the default.
func (e Engine) String() string {
	if e == "" {
		return string(EngineChart)
	}
	return string(e)
}

// NewMatcher builds the matcher selected by engine for t.
func NewMatcher(t Table, engine Engine) (Matcher, error) {
	if err := engine.Validate(); err != nil {
		return nil, err
	}
	if engine == EngineRecursive {
		r, err := NewRecursive(t)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	c, err := NewChart(t)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Count returns how many messages m accepts.
func Count(m Matcher, messages []string) int {
	n := 0
	for _, msg := range messages {
		if m.Accepts(msg) {
			n++
		}
	}
	return n
}
