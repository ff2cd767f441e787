package discord

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ClosetBot_Go/internal/command"
	"github.com/osse101/ClosetBot_Go/internal/database/memory"
	"github.com/osse101/ClosetBot_Go/internal/wardrobe"
)

func newTestBot(t *testing.T) (*Bot, *TestContext) {
	t.Helper()
	tc := SetupTestContext(t)
	svc := wardrobe.NewService(memory.NewItemRepository(), nil)
	return &Bot{
		Session:    tc.Session,
		Registry:   NewCommandRegistry(),
		dispatcher: command.NewDispatcher(svc, command.WithLocation(time.UTC)),
	}, tc
}

func message(authorID, content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		Content:   content,
		Author:    &discordgo.User{ID: authorID, Username: "someone", Bot: bot},
	}}
}

func TestMessageCreate_RepliesToCommands(t *testing.T) {
	b, tc := newTestBot(t)

	b.messageCreate(tc.Session, message("u1", "/add Blue Shirt", false))
	b.messageCreate(tc.Session, message("u1", "/move Blue Shirt", false))

	assert.Equal(t, []string{
		`Added "Blue Shirt" to your house!`,
		`Moved "Blue Shirt" to girlfriends house`,
	}, tc.SentMessages(t))
}

func TestMessageCreate_Ignores(t *testing.T) {
	b, tc := newTestBot(t)

	b.messageCreate(tc.Session, message("u1", "good morning", false))
	b.messageCreate(tc.Session, message("u1", "/wear Hat", false))
	b.messageCreate(tc.Session, message("other-bot", "/list", true))
	b.messageCreate(tc.Session, message("bot-id", "/list", false))

	assert.Empty(t, tc.Requests())
}

type panickingDispatcher struct{}

func (panickingDispatcher) Dispatch(context.Context, string) (string, bool) { panic("boom") }

func (panickingDispatcher) Execute(context.Context, command.Command) string { panic("boom") }

type countingDispatcher struct{ executed int }

func (d *countingDispatcher) Dispatch(context.Context, string) (string, bool) { return "", false }

func (d *countingDispatcher) Execute(context.Context, command.Command) string {
	d.executed++
	return "ok"
}

func TestHandlersRecoverPanics(t *testing.T) {
	tc := SetupTestContext(t)
	b := &Bot{Session: tc.Session, dispatcher: panickingDispatcher{}}

	assert.NotPanics(t, func() {
		b.messageCreate(tc.Session, message("u1", "/list", false))
	})
	assert.NotPanics(t, func() {
		b.interactionCreate(tc.Session, slashCommand("list"))
	})
}

func slashCommand(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "i1",
		AppID: "app",
		Token: "tok",
		Type:  discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func itemOption(value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  OptionItem,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestInteractionCreate(t *testing.T) {
	b, tc := newTestBot(t)

	b.interactionCreate(tc.Session, slashCommand("add", itemOption("Hat")))
	b.interactionCreate(tc.Session, slashCommand("add"))
	b.interactionCreate(tc.Session, slashCommand("list_my_house"))
	b.interactionCreate(tc.Session, slashCommand("unknown"))

	deferrals := tc.InteractionDeferrals(t)
	require.Len(t, deferrals, 3)
	for _, typ := range deferrals {
		assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, typ)
	}

	replies := tc.InteractionEdits(t)
	require.Len(t, replies, 3)
	assert.Equal(t, `Added "Hat" to your house!`, replies[0])
	assert.Equal(t, "Please specify an item name after /add", replies[1])
	assert.Contains(t, replies[2], "- Hat (last moved: ")
	assert.Empty(t, tc.SentMessages(t))
}

func TestInteractionCreate_DefersBeforeEditing(t *testing.T) {
	b, tc := newTestBot(t)

	b.interactionCreate(tc.Session, slashCommand("list"))

	reqs := tc.Requests()
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[0].Path, "/interactions/i1/tok/callback")
	assert.Equal(t, http.MethodPatch, reqs[1].Method)
	assert.Contains(t, reqs[1].Path, "/webhooks/app/tok/messages/@original")
}

func TestInteractionCreate_SkipsCommandWhenDeferFails(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Status["/callback"] = http.StatusInternalServerError
	d := &countingDispatcher{}
	b := &Bot{Session: tc.Session, dispatcher: d}

	b.interactionCreate(tc.Session, slashCommand("list"))

	assert.Zero(t, d.executed)
	assert.Empty(t, tc.InteractionEdits(t))
}

func TestCommandFromInteraction(t *testing.T) {
	cmd, ok := commandFromInteraction(discordgo.ApplicationCommandInteractionData{
		Name:    "delete",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{itemOption("Red Sock")},
	})
	require.True(t, ok)
	assert.Equal(t, command.Command{Kind: command.KindDelete, Arg: "Red Sock"}, cmd)

	_, ok = commandFromInteraction(discordgo.ApplicationCommandInteractionData{Name: "ping"})
	assert.False(t, ok)
}

func TestConnected(t *testing.T) {
	tc := SetupTestContext(t)
	b := &Bot{Session: tc.Session}
	assert.False(t, b.Connected())

	tc.Session.DataReady = true
	assert.True(t, b.Connected())

	assert.False(t, (&Bot{}).Connected())
}
