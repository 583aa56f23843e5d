package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	plantNameMaxLen        = 100
	plantDescriptionMaxLen = 2000
	plantColorMaxLen       = 50
)

// ValidatePlantName checks the (already trimmed) display name of a plant.
func ValidatePlantName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if utf8.RuneCountInString(name) > plantNameMaxLen {
		return fmt.Errorf("name must not exceed %d characters", plantNameMaxLen)
	}

	if strings.ContainsAny(name, "\x00\n\r") {
		return fmt.Errorf("name contains invalid characters")
	}

	return nil
}

// ValidatePlantDescription checks the optional free-form description.
func ValidatePlantDescription(description string) error {
	if utf8.RuneCountInString(description) > plantDescriptionMaxLen {
		return fmt.Errorf("description must not exceed %d characters", plantDescriptionMaxLen)
	}
	return nil
}

// ValidatePlantColor checks the optional color tag. It is free text, not a
// constrained palette: "green", "sage", "#3a7d44" are all fine.
func ValidatePlantColor(color string) error {
	if utf8.RuneCountInString(color) > plantColorMaxLen {
		return fmt.Errorf("color must not exceed %d characters", plantColorMaxLen)
	}
	return nil
}
