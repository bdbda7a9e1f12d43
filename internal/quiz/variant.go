package quiz

import "github.com/ZoVoS/welsh-advanced/internal/models"

// ResolveText picks the text shown for item in lang. Items without variants
// fall back to their canonical field.
func ResolveText(r Rand, item models.VocabularyItem, lang models.Language, preferPrimary bool) string {
	texts := item.Texts(lang)
	if len(texts) == 0 {
		return item.Text(lang)
	}
	return resolve(r, texts, preferPrimary)
}

// ResolveImage returns "" when the item has no image.
func ResolveImage(r Rand, item models.VocabularyItem, preferPrimary bool) string {
	return resolve(r, item.Images, preferPrimary)
}

// ResolveAudio returns "" when the item has no recording in lang.
func ResolveAudio(r Rand, item models.VocabularyItem, lang models.Language, preferPrimary bool) string {
	return resolve(r, item.Audio(lang), preferPrimary)
}

func resolve(r Rand, variants []string, preferPrimary bool) string {
	if len(variants) == 0 {
		return ""
	}
	if preferPrimary {
		return variants[0]
	}
	return Pick(r, variants)
}
