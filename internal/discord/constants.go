package discord

// Embed colors per notification kind
const (
	ColorHarvest  = 0x57F287 // Green
	ColorGolden   = 0xFFD700 // Gold
	ColorPurchase = 0x5865F2 // Discord Blurple
	ColorExchange = 0xEB459E // Fuchsia
	ColorRestock  = 0x3498DB // Blue
	ColorWilt     = 0xE67E22 // Orange
	ColorDefault  = 0x95A5A6 // Grey
)

const (
	// WebhookUsername is the display name of posted messages
	WebhookUsername = "Garden"
	// FooterText is shown under every embed
	FooterText = "Garden Economy"
	// webhookPathMarker precedes "<id>/<token>" in a webhook URL
	webhookPathMarker = "/webhooks/"
)

// Log messages
const (
	LogMsgNotifierRegistered = "Discord webhook notifier registered"
	LogMsgNotificationSent   = "Discord notification sent"
	LogMsgNotificationFailed = "Failed to send Discord notification"
	LogMsgQueueFull          = "Discord notification queue full, dropping"
	LogMsgParseError         = "Failed to parse garden notification payload"
)
