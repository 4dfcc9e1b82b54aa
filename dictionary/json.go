package dictionary

import "encoding/json"

// DebugJSON marshals the spec tree for the generator's <stem>.parsed.json
// debug sidecar (§4.2, §4.3). There is no third-party JSON library
// anywhere in the retrieval pack — see DESIGN.md — so this single,
// one-shot marshal uses encoding/json directly rather than reaching for
// a dependency with no grounding.
func (s *Spec) DebugJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
