package discord

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClosetBot_Go/internal/command"
)

// OptionItem is the slash command option carrying the item name
const OptionItem = "item"

var commandDescriptions = map[command.Kind]string{
	command.KindStart:       "Show the available commands",
	command.KindAdd:         "Add a new clothing item",
	command.KindMove:        "Move an item between houses",
	command.KindList:        "List all items and their locations",
	command.KindListMyHouse: "List items at your house",
	command.KindListGFHouse: "List items at your girlfriend's house",
	command.KindDelete:      "Remove an item from tracking",
}

// CommandRegistry holds the slash commands offered to Discord
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
}

// NewCommandRegistry creates a registry with one slash command per chat command
func NewCommandRegistry() *CommandRegistry {
	r := &CommandRegistry{Commands: make(map[string]*discordgo.ApplicationCommand)}
	for _, kind := range command.Kinds {
		r.Register(applicationCommand(kind))
	}
	return r
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand) {
	r.Commands[cmd.Name] = cmd
}

// Desired returns the registered commands sorted by name
func (r *CommandRegistry) Desired() []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

func applicationCommand(kind command.Kind) *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Name:        string(kind),
		Description: commandDescriptions[kind],
	}
	if kind.TakesItem() {
		// optional so an empty invocation gets the usage hint
		cmd.Options = []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionItem,
			Description: "Item name",
			Required:    false,
		}}
	}
	return cmd
}

// RegisterCommands intelligently registers/updates commands with Discord
// Only performs updates if commands have changed to avoid rate limits
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	desiredCmds := registry.Desired()

	if forceUpdate {
		slog.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info("Commands force updated successfully")
		return nil
	}

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Commands changed, updating...",
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	return a.Type == b.Type && a.Name == b.Name && a.Description == b.Description && a.Required == b.Required
}
