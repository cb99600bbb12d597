// README: Telegram transport adapter; routes updates into the conversation
// engine and renders its replies (messages and inline keyboards).
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/go-telegram/ui/keyboard/inline"

	"viagem/internal/modules/trip"
	"viagem/internal/types"
)

var commands = []string{"start", "ajuda", "cotacao", "combustivel", "resumo", "cancelar", "historico", "rota"}

type Bot struct {
	b      *bot.Bot
	engine *trip.Service
}

func New(token string, engine *trip.Service) (*Bot, error) {
	a := &Bot{engine: engine}

	opts := []bot.Option{
		bot.WithDefaultHandler(a.onUpdate),
	}
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create bot: %w", err)
	}
	a.b = b

	for _, name := range commands {
		b.RegisterHandler(bot.HandlerTypeMessageText, name, bot.MatchTypeCommand, a.command(name))
	}
	return a, nil
}

// Start runs long polling until the context is cancelled.
func (a *Bot) Start(ctx context.Context) {
	a.b.Start(ctx)
}

// onUpdate handles all non-command messages: free text and shared locations.
func (a *Bot) onUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := types.ChatID(update.Message.Chat.ID)

	var ev trip.Event
	switch {
	case update.Message.Location != nil:
		ev = trip.Event{
			Kind: trip.EventLocation,
			Location: types.Point{
				Lat: update.Message.Location.Latitude,
				Lng: update.Message.Location.Longitude,
			},
		}
	case update.Message.Text != "":
		ev = trip.Event{Kind: trip.EventText, Text: update.Message.Text}
	default:
		return
	}

	a.deliver(ctx, b, chatID, a.engine.Handle(ctx, chatID, ev))
}

func (a *Bot) command(name string) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		chatID := types.ChatID(update.Message.Chat.ID)

		args := commandArgs(update.Message.Text, name)
		if name == "start" {
			// The welcome card greets by first name.
			args = firstName(update)
		}

		replies := a.engine.Handle(ctx, chatID, trip.Event{
			Kind:    trip.EventCommand,
			Command: name,
			Args:    args,
		})
		a.deliver(ctx, b, chatID, replies)
	}
}

func (a *Bot) deliver(ctx context.Context, b *bot.Bot, chatID types.ChatID, replies []trip.Reply) {
	for _, r := range replies {
		params := &bot.SendMessageParams{
			ChatID: int64(chatID),
			Text:   r.Text,
		}
		if len(r.Choices) > 0 {
			kb := inline.New(b)
			for _, c := range r.Choices {
				kb.Row().Button(c.Label, []byte(c.ID), a.onChoice(chatID))
			}
			params.ReplyMarkup = kb
		}
		if _, err := b.SendMessage(ctx, params); err != nil {
			log.Printf("telegram: could not send message to chat %d: %v", chatID, err)
		}
	}
}

func (a *Bot) onChoice(chatID types.ChatID) inline.OnSelect {
	return func(ctx context.Context, b *bot.Bot, _ models.MaybeInaccessibleMessage, data []byte) {
		replies := a.engine.Handle(ctx, chatID, trip.Event{
			Kind:     trip.EventChoice,
			ChoiceID: string(data),
		})
		a.deliver(ctx, b, chatID, replies)
	}
}

// commandArgs strips "/name" (with optional @botname suffix) from the text.
func commandArgs(text, name string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	rest := strings.TrimPrefix(text, "/"+name)
	if at := strings.Index(rest, " "); strings.HasPrefix(rest, "@") && at >= 0 {
		rest = rest[at:]
	} else if strings.HasPrefix(rest, "@") {
		rest = ""
	}
	return strings.TrimSpace(rest)
}

func firstName(update *models.Update) string {
	if update.Message.From == nil {
		return ""
	}
	return update.Message.From.FirstName
}
