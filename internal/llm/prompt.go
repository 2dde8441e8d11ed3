package llm

import (
	"fmt"
	"strings"
)

func BuildPitchPrompt(addOnName, itemName, category string) string {
	return fmt.Sprintf(
		"Write a 1-line appetizing pitch for adding %s to %s (%s). Max 12 words.",
		addOnName, itemName, category,
	)
}

func BuildComboNamePrompt(itemNames []string) string {
	return fmt.Sprintf(
		"Create a catchy 3-word Indian combo name and 1-line description for: %s. "+
			"Separate name and desc with a pipe |",
		strings.Join(itemNames, ", "),
	)
}
