package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/discord"
	"github.com/osse101/GardenBot_Go/internal/event"
	"github.com/osse101/GardenBot_Go/internal/metrics"
	"github.com/osse101/GardenBot_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
	Queue    discord.JobQueue
	Config   *config.Config

	// Executor overrides the discordgo session used for webhooks. Tests set it.
	Executor discord.Executor
}

// RegisterEventHandlers subscribes every garden event consumer:
//   - metrics collector (event counters)
//   - SSE subscriber (live garden streams)
//   - Discord notifier, when DISCORD_WEBHOOK_URL is set
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if deps.Config.DiscordWebhookURL == "" {
		slog.Info(LogMsgDiscordNotifierDisabled)
		return nil
	}

	executor := deps.Executor
	if executor == nil {
		session, err := discord.NewSession()
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordSession, err)
		}
		executor = session
	}

	notifier, err := discord.NewNotifier(executor, deps.Queue, deps.Config.DiscordWebhookURL, deps.Config.DiscordNotifyKinds)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}
	notifier.Register(deps.EventBus)
	slog.Info(LogMsgDiscordNotifierRegistered, "kinds", deps.Config.DiscordNotifyKinds)

	return nil
}
