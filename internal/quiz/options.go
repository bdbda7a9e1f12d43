package quiz

import "github.com/ZoVoS/welsh-advanced/internal/models"

// BuildOptions returns up to k items in random order: correct plus k-1
// distinct distractors from pool.
func BuildOptions(r Rand, correct models.VocabularyItem, pool []models.VocabularyItem, k int) []models.VocabularyItem {
	if k < 1 {
		k = 1
	}

	others := make([]models.VocabularyItem, 0, len(pool))
	seen := map[string]bool{correct.ID: true}
	for _, item := range pool {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		others = append(others, item)
	}

	others = Shuffle(r, others)
	if len(others) > k-1 {
		others = others[:k-1]
	}

	options := make([]models.VocabularyItem, 0, len(others)+1)
	options = append(options, correct)
	options = append(options, others...)

	return Shuffle(r, options)
}

// RenderOptions resolves what each option displays for answerType.
func RenderOptions(r Rand, items []models.VocabularyItem, answerType models.AnswerType, preferText, preferMedia bool) []models.RenderedOption {
	rendered := make([]models.RenderedOption, len(items))
	for i, item := range items {
		var display string
		if answerType == models.AnswerImage {
			display = ResolveImage(r, item, preferMedia)
		} else {
			display = ResolveText(r, item, answerType.Language(), preferText)
		}

		rendered[i] = models.RenderedOption{
			Index:   i,
			ItemID:  item.ID,
			Display: display,
			Type:    answerType,
		}
	}
	return rendered
}
