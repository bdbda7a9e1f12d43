package bot

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/ZoVoS/welsh-advanced/internal/assets"
	"github.com/ZoVoS/welsh-advanced/internal/quiz"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrMediaUnavailable = errors.New("media unavailable")

type MediaI interface {
	File(path string) (tgbotapi.RequestFileData, bool)
}

// MediaT turns published /assets/ paths into files Telegram can send: a
// local file when the assets directory has it, a URL otherwise.
type MediaT struct {
	store     *assets.Store
	publicURL string
}

func NewMediaT(assetsDir, publicURL string) *MediaT {
	m := &MediaT{publicURL: strings.TrimRight(publicURL, "/")}
	if assetsDir != "" {
		m.store = assets.NewStore(assetsDir)
	}
	return m
}

func (m *MediaT) File(path string) (tgbotapi.RequestFileData, bool) {
	if path == "" {
		return nil, false
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return tgbotapi.FileURL(path), true
	}

	if m.store != nil {
		if local, ok := m.store.Local(path); ok {
			if info, err := os.Stat(local); err == nil && !info.IsDir() {
				return tgbotapi.FilePath(local), true
			}
		}
	}

	if m.publicURL != "" && strings.HasPrefix(path, "/") {
		return tgbotapi.FileURL(m.publicURL + path), true
	}

	return nil, false
}

// AudioPlayer plays a recording by sending it to a chat. Playback counts as
// finished once Telegram accepted the file.
type AudioPlayer struct {
	bot    BotSender
	media  MediaI
	chatID int64
}

func NewAudioPlayer(bot BotSender, media MediaI, chatID int64) *AudioPlayer {
	return &AudioPlayer{
		bot:    bot,
		media:  media,
		chatID: chatID,
	}
}

var _ quiz.Player = (*AudioPlayer)(nil)

func (a *AudioPlayer) Play(ctx context.Context, path string) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)

		if err := ctx.Err(); err != nil {
			done <- err
			return
		}

		file, ok := a.media.File(path)
		if !ok {
			done <- ErrMediaUnavailable
			return
		}

		audio := tgbotapi.NewAudio(a.chatID, file)
		_, err := a.bot.Send(audio)
		done <- err
	}()

	return done
}
