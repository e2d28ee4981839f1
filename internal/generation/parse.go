package generation

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/health-planner/internal/schemas"
	"github.com/jonathan/health-planner/internal/types"
)

// ParsePlan parses the generator's raw response into a GeneratedPlan.
// The document is untrusted: markdown fences are stripped, the JSON is
// checked against the plan schema, and only then unmarshaled. A failure at
// any step is reported to the caller, who is expected to fall back rather
// than propagate.
func ParsePlan(raw string) (*types.GeneratedPlan, error) {
	cleaned := CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("generator returned an empty document")
	}

	if err := schemas.ValidateGeneratedPlan([]byte(cleaned)); err != nil {
		return nil, fmt.Errorf("generated document failed schema validation: %w", err)
	}

	var plan types.GeneratedPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse generated document: %w", err)
	}

	return &plan, nil
}
