package recipes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Importer turns an uploaded text or PDF file into a recipe draft: the first
// non-empty line is read as the dish name, the rest as ingredient lines. A
// line reading "steps"/"instructions"/"method" switches the remainder into
// preparation steps.
type Importer struct{}

// NewImporter constructs an Importer.
func NewImporter() *Importer {
	return &Importer{}
}

// Import parses the payload into an unsaved recipe draft.
func (i *Importer) Import(ctx context.Context, fileName string, data []byte) (Recipe, error) {
	if err := ctx.Err(); err != nil {
		return Recipe{}, err
	}
	if len(data) == 0 {
		return Recipe{}, ErrInvalidInput
	}

	text, err := extractText(fileName, data)
	if err != nil {
		return Recipe{}, err
	}
	return parseDraft(text)
}

func extractText(fileName string, data []byte) (string, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") || bytes.HasPrefix(data, []byte("%PDF")) {
		return extractPDF(data)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidInput
	}
	return string(data), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func parseDraft(text string) (Recipe, error) {
	var draft Recipe
	inSteps := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimLeft(raw, "-*• \t"))
		if line == "" {
			continue
		}
		if draft.DishName == "" {
			draft.DishName = line
			continue
		}
		if isStepsHeading(line) {
			inSteps = true
			continue
		}
		if isIngredientsHeading(line) {
			inSteps = false
			continue
		}
		if inSteps {
			draft.Steps = append(draft.Steps, line)
		} else {
			draft.Ingredients = append(draft.Ingredients, line)
		}
	}

	if draft.DishName == "" || len(draft.Ingredients) == 0 {
		return Recipe{}, ErrInvalidInput
	}
	return draft, nil
}

func isStepsHeading(line string) bool {
	switch strings.ToLower(strings.TrimRight(line, ":")) {
	case "steps", "instructions", "method", "directions", "preparation":
		return true
	}
	return false
}

func isIngredientsHeading(line string) bool {
	return strings.EqualFold(strings.TrimRight(line, ":"), "ingredients")
}
