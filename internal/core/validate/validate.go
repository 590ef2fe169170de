// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// NotBlank validates a value is non-empty after trimming whitespace.
func NotBlank(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// NotBlankField returns a criterio validator for a required text field.
func NotBlankField(field, value string) error {
	return criterio.Run(field, value, NotBlank)
}

// ArticleRequest validates the fields of an article request. Both the title
// and the description must contain something other than whitespace.
func ArticleRequest(title, description string) error {
	return criterio.ValidateStruct(
		NotBlankField("title", title),
		NotBlankField("description", description),
	)
}
