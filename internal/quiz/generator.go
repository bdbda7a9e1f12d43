package quiz

import "github.com/ZoVoS/welsh-advanced/internal/models"

const textAnswerProbability = 0.7

// GenerateQuestions draws count questions from pool without replacement,
// starting a new round from the full pool whenever the pool is smaller than
// count and the current round is used up.
func GenerateQuestions(r Rand, pool []models.VocabularyItem, mode models.Mode, count int) []models.Question {
	if len(pool) == 0 || count <= 0 {
		return nil
	}

	allowRepeats := len(pool) < count
	draw := append([]models.VocabularyItem(nil), pool...)
	questions := make([]models.Question, 0, count)

	for i := 0; i < count; i++ {
		if len(draw) == 0 {
			if !allowRepeats {
				break
			}
			draw = append(draw, pool...)
		}

		idx := r.Intn(len(draw))
		item := draw[idx]
		draw = append(draw[:idx], draw[idx+1:]...)

		question := models.Question{Item: item}
		if mode == models.ModeMixed {
			question.QuestionType, question.AnswerType = mixedTypes(r)
		}
		questions = append(questions, question)
	}

	return questions
}

// mixedTypes picks a question type uniformly, then an answer type that keeps
// the question meaningful: welsh audio is never answered with welsh text or
// an image, and text questions never ask for the same language back.
func mixedTypes(r Rand) (models.QuestionType, models.AnswerType) {
	questionType := Pick(r, models.QuestionTypes)

	switch questionType {
	case models.QuestionEnglishText:
		if r.Float64() < textAnswerProbability {
			return questionType, models.AnswerWelshText
		}
		return questionType, models.AnswerImage
	case models.QuestionWelshText:
		if r.Float64() < textAnswerProbability {
			return questionType, models.AnswerEnglishText
		}
		return questionType, models.AnswerImage
	case models.QuestionWelshAudio:
		return questionType, models.AnswerEnglishText
	default:
		// image and english audio
		return questionType, models.AnswerWelshText
	}
}
