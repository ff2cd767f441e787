package discord

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClosetBot_Go/internal/command"
	"github.com/osse101/ClosetBot_Go/internal/logger"
)

// messageCreate answers "/command" text messages
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer recoverHandler("message_create")

	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx := newEventContext()
	reply, ok := b.dispatcher.Dispatch(ctx, m.Content)
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, fitMessage(reply)); err != nil {
		logger.FromContext(ctx).Error("Failed to send reply", "channel_id", m.ChannelID, "error", err)
	}
}

// interactionCreate answers slash commands
func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer recoverHandler("interaction_create")

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmd, ok := commandFromInteraction(i.ApplicationCommandData())
	if !ok {
		return
	}

	ctx := newEventContext()
	if !deferResponse(ctx, s, i) {
		return
	}

	content := fitMessage(b.dispatcher.Execute(ctx, cmd))
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		logger.FromContext(ctx).Error("Failed to edit interaction response", "command", cmd.Kind, "error", err)
	}
}

// deferResponse acknowledges the interaction so a slow store cannot miss
// Discord's initial response window. The reply follows as an edit.
func deferResponse(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		logger.FromContext(ctx).Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// commandFromInteraction converts slash command data to its text command form
func commandFromInteraction(data discordgo.ApplicationCommandInteractionData) (command.Command, bool) {
	kind, ok := command.KindFromKeyword(data.Name)
	if !ok {
		return command.Command{}, false
	}

	cmd := command.Command{Kind: kind}
	for _, opt := range data.Options {
		if opt.Name == OptionItem && opt.Type == discordgo.ApplicationCommandOptionString {
			cmd.Arg = opt.StringValue()
		}
	}
	return cmd, true
}

func newEventContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

func recoverHandler(event string) {
	if r := recover(); r != nil {
		slog.Error("Recovered from panic in Discord handler",
			"event", event,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}
