// Package generator produces placeholder card content. It stands in for a
// future model-backed generation service; the output is deterministic so
// callers and tests can rely on exact strings.
package generator

import (
	"fmt"

	"github.com/yungbote/learncards-backend/internal/types"
)

// Generate returns the placeholder body for one card. It is total: an
// unrecognized card type falls through to a generic template instead of
// failing. Handlers validate card types before calling, so the fallback
// is not reachable through the HTTP surface.
func Generate(topic, cardType string) string {
	switch cardType {
	case types.CardTypeFlashcard:
		return fmt.Sprintf("Q: What is %s?\nA: This is a simple explanation of %s.", topic, topic)
	case types.CardTypeSummary:
		return fmt.Sprintf("Summary for %s: this is a short high-level summary.", topic)
	case types.CardTypeQuiz:
		return fmt.Sprintf("Quiz question about %s: write one key concept related to it.", topic)
	case types.CardTypeTask:
		return fmt.Sprintf("Task for %s: perform a small exercise that uses this topic in practice.", topic)
	case types.CardTypeUsecase:
		return fmt.Sprintf("Use case for %s: describe when and why you would use %s.", topic, topic)
	case types.CardTypeMindmap:
		return fmt.Sprintf("Mindmap structure for %s: main idea -> subtopic A, subtopic B, subtopic C.", topic)
	default:
		return fmt.Sprintf("Generic content for %s (type: %s).", topic, cardType)
	}
}
