// Package discord posts garden notifications to a Discord channel webhook.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/event"
	"github.com/osse101/GardenBot_Go/internal/worker"
)

// ErrInvalidWebhookURL is returned for URLs without an id and token
var ErrInvalidWebhookURL = errors.New("invalid discord webhook URL")

// Executor is the part of *discordgo.Session the notifier needs
type Executor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// JobQueue accepts delivery jobs without blocking. *worker.Pool satisfies it.
type JobQueue interface {
	TryEnqueue(job worker.Job) bool
}

// Notifier forwards garden.notification events to a webhook
type Notifier struct {
	executor  Executor
	queue     JobQueue
	webhookID string
	token     string
	kinds     map[domain.NotificationKind]bool // nil means every kind
}

// ParseWebhookURL extracts the id and token from
// https://discord.com/api/webhooks/<id>/<token>
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidWebhookURL, raw)
	}
	idx := strings.Index(u.Path, webhookPathMarker)
	if idx < 0 {
		return "", "", fmt.Errorf("%w: missing %s", ErrInvalidWebhookURL, webhookPathMarker)
	}
	parts := strings.Split(strings.Trim(u.Path[idx+len(webhookPathMarker):], "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: expected <id>/<token>", ErrInvalidWebhookURL)
	}
	return parts[0], parts[1], nil
}

// NewNotifier creates a notifier for webhookURL. kinds limits which
// notifications are forwarded; empty forwards all.
func NewNotifier(executor Executor, queue JobQueue, webhookURL string, kinds []string) (*Notifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	n := &Notifier{executor: executor, queue: queue, webhookID: id, token: token}
	if len(kinds) > 0 {
		n.kinds = make(map[domain.NotificationKind]bool, len(kinds))
		for _, k := range kinds {
			n.kinds[domain.NotificationKind(strings.TrimSpace(k))] = true
		}
	}
	return n, nil
}

// NewSession returns a token-less discordgo session, enough for webhooks
func NewSession() (*discordgo.Session, error) {
	return discordgo.New("")
}

// Register subscribes the notifier to the bus
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.GardenNotification, n.HandleEvent)
	slog.Info(LogMsgNotifierRegistered, "kinds", len(n.kinds))
}

// HandleEvent queues a webhook post. It never blocks on Discord.
func (n *Notifier) HandleEvent(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.GardenNotificationPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgParseError, "error", err, "event_type", evt.Type)
		return nil
	}
	if n.kinds != nil && !n.kinds[payload.Kind] {
		return nil
	}

	job := &webhookJob{notifier: n, embed: BuildEmbed(payload), kind: payload.Kind}
	if !n.queue.TryEnqueue(job) {
		slog.Warn(LogMsgQueueFull, "kind", payload.Kind, "session_id", payload.SessionID)
	}
	return nil
}

// BuildEmbed renders one notification
func BuildEmbed(p event.GardenNotificationPayloadV1) *discordgo.MessageEmbed {
	ts := time.Now()
	if p.Timestamp > 0 {
		ts = time.Unix(p.Timestamp, 0)
	}
	return &discordgo.MessageEmbed{
		Title:       p.Title,
		Description: p.Description,
		Color:       embedColor(p),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s | %s", FooterText, p.SessionID),
		},
	}
}

func embedColor(p event.GardenNotificationPayloadV1) int {
	switch p.Kind {
	case domain.NotificationHarvest:
		lower := strings.ToLower(p.Description)
		if strings.HasPrefix(lower, string(domain.VariantGolden)) || strings.HasPrefix(lower, string(domain.VariantRainbow)) {
			return ColorGolden
		}
		return ColorHarvest
	case domain.NotificationPurchase:
		return ColorPurchase
	case domain.NotificationExchange:
		return ColorExchange
	case domain.NotificationRestock:
		return ColorRestock
	case domain.NotificationWilt:
		return ColorWilt
	default:
		return ColorDefault
	}
}

type webhookJob struct {
	notifier *Notifier
	embed    *discordgo.MessageEmbed
	kind     domain.NotificationKind
}

func (j *webhookJob) Name() string { return "discord_webhook" }

func (j *webhookJob) Process(ctx context.Context) error {
	n := j.notifier
	_, err := n.executor.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Username: WebhookUsername,
		Embeds:   []*discordgo.MessageEmbed{j.embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		slog.Error(LogMsgNotificationFailed, "error", err, "kind", j.kind)
		return err
	}
	slog.Debug(LogMsgNotificationSent, "kind", j.kind)
	return nil
}
