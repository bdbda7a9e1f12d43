package quiz

import (
	"fmt"

	"github.com/ZoVoS/welsh-advanced/internal/models"
)

// Evaluate checks the option at index selected against correctID and marks
// every option for highlighting.
func Evaluate(options []models.RenderedOption, selected int, correctID string) (models.Evaluation, error) {
	if selected < 0 || selected >= len(options) {
		return models.Evaluation{}, fmt.Errorf("%w: %d of %d", ErrInvalidOption, selected, len(options))
	}

	eval := models.Evaluation{
		Correct:  options[selected].ItemID != "" && options[selected].ItemID == correctID,
		Selected: selected,
		Marks:    make([]models.Mark, len(options)),
	}

	for i, opt := range options {
		if opt.ItemID == "" {
			continue
		}
		switch {
		case opt.ItemID == correctID:
			eval.Marks[i] = models.MarkCorrect
		case i == selected && !eval.Correct:
			eval.Marks[i] = models.MarkIncorrect
		}
	}

	return eval, nil
}
