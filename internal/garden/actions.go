package garden

import "github.com/osse101/GardenBot_Go/internal/domain"

// Action is a single state transition request dispatched to the reducer
type Action interface {
	Name() string
}

// PlantSeed plants an owned seed instance into an empty plot
type PlantSeed struct {
	PlotID string
	SeedID string
}

// WaterPlant waters the plant in a plot
type WaterPlant struct {
	PlotID string
}

// HarvestPlant harvests a ready plant and pays out coins
type HarvestPlant struct {
	PlotID string
}

// BuySeed buys a seed listing from the shop
type BuySeed struct {
	SeedID string
}

// BuyGear buys a gear listing from the shop
type BuyGear struct {
	GearID string
}

// ExchangeXP converts XP into coins
type ExchangeXP struct {
	Amount int
}

// CreditXP adds XP earned outside the garden (lessons, quizzes)
type CreditXP struct {
	Amount int
}

// Tick applies every due background check: shop restocks and wilting
type Tick struct{}

// Restock relists both shops unconditionally, keeping the deadlines
type Restock struct{}

func (PlantSeed) Name() string    { return ActionPlant }
func (WaterPlant) Name() string   { return ActionWater }
func (HarvestPlant) Name() string { return ActionHarvest }
func (BuySeed) Name() string      { return ActionBuySeed }
func (BuyGear) Name() string      { return ActionBuyGear }
func (ExchangeXP) Name() string   { return ActionExchange }
func (CreditXP) Name() string     { return ActionCreditXP }
func (Tick) Name() string         { return ActionTick }
func (Restock) Name() string      { return ActionRestock }

// HarvestResult describes a completed harvest
type HarvestResult struct {
	PlotID     string         `json:"plot_id"`
	SeedType   string         `json:"seed_type"`
	Variant    domain.Variant `json:"variant"`
	SizeKg     float64        `json:"size_kg"`
	Multiplier int            `json:"multiplier"`
	Earnings   int            `json:"earnings"`
}

// Outcome is what an applied action produced besides the new state
type Outcome struct {
	Changed       bool
	Notifications []domain.Notification
	Harvest       *HarvestResult
}

func (o *Outcome) notify(n domain.Notification) {
	o.Notifications = append(o.Notifications, n)
}
