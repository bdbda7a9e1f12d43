package quiz

import (
	"fmt"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
)

// FormatElapsed splits d into zero-padded minutes and seconds, dropping
// fractions of a second.
func FormatElapsed(d time.Duration) models.ElapsedTime {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return models.ElapsedTime{
		Minutes: fmt.Sprintf("%02d", total/60),
		Seconds: fmt.Sprintf("%02d", total%60),
	}
}
