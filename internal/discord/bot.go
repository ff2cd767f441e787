package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClosetBot_Go/internal/command"
)

// Dispatcher turns inbound command text into replies
type Dispatcher interface {
	Dispatch(ctx context.Context, text string) (reply string, ok bool)
	Execute(ctx context.Context, cmd command.Command) string
}

// Bot represents the Discord bot
type Bot struct {
	Session            *discordgo.Session
	AppID              string
	ForceCommandUpdate bool
	Registry           *CommandRegistry
	dispatcher         Dispatcher
}

// Config holds the bot configuration
type Config struct {
	Token              string
	AppID              string
	ForceCommandUpdate bool
}

// New creates a new Discord bot
func New(cfg Config, dispatcher Dispatcher) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return &Bot{
		Session:            s,
		AppID:              cfg.AppID,
		ForceCommandUpdate: cfg.ForceCommandUpdate,
		Registry:           NewCommandRegistry(),
		dispatcher:         dispatcher,
	}, nil
}

// Start opens the gateway connection and registers slash commands when an
// application id is configured.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.AppID == "" {
		slog.Info("DISCORD_APP_ID not set, slash commands disabled")
	} else if err := b.RegisterCommands(b.Registry, b.ForceCommandUpdate); err != nil {
		// text commands keep working without slash commands
		slog.Error("Failed to register slash commands", "error", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	if err := b.Session.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}

// Connected reports whether the gateway session is up and has received READY
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
}
