package discord

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/entry"
	"github.com/KirkDiggler/pourlog/internal/services/analytics"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
	"github.com/KirkDiggler/pourlog/internal/services/messaging"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	drink      *DrinkCommand
	config     *Config
	logger     *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	Journal   journal.Service
	Analytics analytics.Service
	Messaging messaging.Service
	Parser    *entry.Parser
	Clock     clock.Clock

	// Logger is optional
	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	drink, err := NewDrinkCommand(&DrinkCommandConfig{
		Journal:   cfg.Journal,
		Analytics: cfg.Analytics,
		Messaging: cfg.Messaging,
		Parser:    cfg.Parser,
		Clock:     cfg.Clock,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		drink:      drink,
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.drink); err != nil {
		return fmt.Errorf("failed to register drink command: %w", err)
	}

	b.logger.Info("discord.started")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID, guildID := b.target()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("discord.command_delete_failed", "command", cmdName, "id", cmdID, "error", err)
		} else {
			b.logger.Info("discord.command_deleted", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.target()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("discord.command_registered", "command", cmd.GetName(), "id", createdCmd.ID, "guild", guildID)

	return nil
}

// target returns the application and guild commands are registered under.
// An empty guild registers globally.
func (b *Bot) target() (string, string) {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("discord.command_failed", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if err := b.drink.HandleComponent(s, i); err != nil {
			b.logger.Error("discord.component_failed", "custom_id", customID, "error", err)
		}
	}
}
