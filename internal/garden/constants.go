package garden

import "time"

// Lifecycle tuning
const (
	WiltThreshold        = 10 * time.Minute
	WaterReductionFactor = 0.5
	SizeVariance         = 0.3
	FallbackSellPrice    = 100
)

// Variant roll
const (
	BaseRainbowChance = 0.02
	BaseGoldenChance  = 0.10
	SprinklerBoost    = 1.5

	RainbowMultiplier = 5
	GoldenMultiplier  = 2
	NormalMultiplier  = 1
)

// Shop schedule
const (
	SeedRestockInterval = 60 * time.Minute
	GearRestockInterval = 15 * time.Minute
)

// ExchangeRate is the number of coins paid per XP point
const ExchangeRate = 2

// Session cache
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionCacheTTL  = 2 * time.Hour
	DefaultPersistRetry     = 200 * time.Millisecond
)

// Action names, used as metric labels and in logs
const (
	ActionPlant    = "plant"
	ActionWater    = "water"
	ActionHarvest  = "harvest"
	ActionBuySeed  = "buy_seed"
	ActionBuyGear  = "buy_gear"
	ActionExchange = "exchange"
	ActionCreditXP = "credit_xp"
	ActionTick     = "tick"
	ActionRestock  = "restock"
)

// Metric result labels
const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
)

// User-facing messages
const (
	MsgHarvestTitle       = "Harvested %s!"
	MsgHarvestDescription = "%s %s (%.1f kg) sold for %d coins"
	MsgSeedBoughtTitle    = "Seed purchased"
	MsgSeedBoughtDesc     = "Bought %s for %d coins"
	MsgGearBoughtTitle    = "Gear purchased"
	MsgGearBoughtDesc     = "Bought %s for %d coins"
	MsgSprinklerDesc      = "Sprinkler installed: rare variants are 1.5x more likely"
	MsgPlotUpgradeDesc    = "Garden expanded to %dx%d. All plots were cleared"
	MsgExchangeTitle      = "Exchange complete"
	MsgExchangeDesc       = "Traded %d XP for %d coins"
	MsgSeedShopRestocked  = "Seed shop restocked"
	MsgGearShopRestocked  = "Gear shop restocked"
	MsgRestockDescription = "Fresh stock is available"
	MsgWiltTitle          = "A plant is wilting"
	MsgWiltDescription    = "Your %s needs water"
)

// Log messages
const (
	LogMsgSessionOpened     = "Garden session opened"
	LogMsgSessionCreated    = "New garden created"
	LogMsgActionApplied     = "Garden action applied"
	LogMsgActionRejected    = "Garden action rejected"
	LogMsgPersistRetry      = "Failed to persist garden, retrying once"
	LogMsgPersistFailed     = "Failed to persist garden"
	LogMsgPublishFailed     = "Failed to publish garden notification"
	LogMsgTickFailed        = "Garden tick failed"
	LogMsgShuttingDown      = "Garden service shutting down, flushing sessions"
	LogMsgSessionReset      = "Garden session reset"
	LogMsgSnapshotDecodeErr = "Failed to decode garden snapshot"
	LogMsgEvictedUnsaved    = "Garden evicted from cache with unsaved changes, parked for retry"
	LogMsgSessionUnparked   = "Garden restored from parked unsaved state"
	LogMsgParkedSaved       = "Parked garden written to store"
)
