package garden

import (
	"math"
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/utils"
)

// Engine provides pure plant lifecycle logic (no storage dependencies).
// All randomness goes through rnd so tests can pin outcomes.
type Engine struct {
	rnd func() float64
}

// NewEngine creates a new lifecycle engine. A nil rnd uses utils.RandomFloat.
func NewEngine(rnd func() float64) *Engine {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Engine{rnd: rnd}
}

// Elapsed returns milliseconds since the plant's growth start
func (e *Engine) Elapsed(p *domain.Plant, now time.Time) int64 {
	return now.UnixMilli() - p.PlantedAt
}

// Progress returns growth progress clamped to [0, 1]
func (e *Engine) Progress(p *domain.Plant, now time.Time) float64 {
	if p.GrowthTimeMs <= 0 {
		return 1
	}
	progress := float64(e.Elapsed(p, now)) / float64(p.GrowthTimeMs)
	return math.Max(0, math.Min(1, progress))
}

// IsReady reports whether the plant has reached maturity
func (e *Engine) IsReady(p *domain.Plant, now time.Time) bool {
	return e.Elapsed(p, now) >= p.GrowthTimeMs
}

// TimeLeft returns the remaining growth time, never negative
func (e *Engine) TimeLeft(p *domain.Plant, now time.Time) time.Duration {
	return time.Duration(e.remainingMs(p, now)) * time.Millisecond
}

func (e *Engine) remainingMs(p *domain.Plant, now time.Time) int64 {
	remaining := p.GrowthTimeMs - e.Elapsed(p, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NewPlant creates a freshly planted plant from a seed.
// Size is rolled as baseSizeKg * (1 + uniform(-0.3, 0.3)), rounded to one decimal.
func (e *Engine) NewPlant(id string, seed domain.Seed, now time.Time) *domain.Plant {
	nowMs := now.UnixMilli()
	variance := e.rnd()*2*SizeVariance - SizeVariance
	return &domain.Plant{
		ID:            id,
		SeedType:      seed.Name,
		PlantedAt:     nowMs,
		GrowthTimeMs:  int64(seed.BaseGrowthTime) * time.Minute.Milliseconds(),
		LastWateredAt: nowMs,
		IsWilted:      false,
		Variant:       domain.VariantNormal,
		SizeKg:        utils.RoundTo(seed.BaseSizeKg*(1+variance), 1),
		SellPrice:     seed.SellPrice,
	}
}

// Water halves the remaining growth time and clears the wilt flag.
// PlantedAt is moved so that elapsed bookkeeping stays consistent.
func (e *Engine) Water(p *domain.Plant, now time.Time) {
	nowMs := now.UnixMilli()
	remaining := e.remainingMs(p, now)
	// Timestamps are whole milliseconds; an odd remainder rounds down, so a
	// watered plant is ready at most 0.5ms early.
	newRemaining := int64(float64(remaining) * WaterReductionFactor)
	p.PlantedAt = nowMs - (p.GrowthTimeMs - newRemaining)
	p.LastWateredAt = nowMs
	p.IsWilted = false
}

// CheckWilt flags the plant as wilted once it has gone too long without water.
// Returns true only on the transition.
func (e *Engine) CheckWilt(p *domain.Plant, now time.Time) bool {
	if p.IsWilted {
		return false
	}
	if now.UnixMilli()-p.LastWateredAt > WiltThreshold.Milliseconds() {
		p.IsWilted = true
		return true
	}
	return false
}

// RollVariant draws a variant. Rainbow is checked first against the narrower band.
func (e *Engine) RollVariant(sprinklerActive bool) domain.Variant {
	boost := 1.0
	if sprinklerActive {
		boost = SprinklerBoost
	}

	r := e.rnd()
	if r < BaseRainbowChance*boost {
		return domain.VariantRainbow
	}
	if r < BaseGoldenChance*boost {
		return domain.VariantGolden
	}
	return domain.VariantNormal
}

// HarvestVariant decides the variant paid out at harvest. Normal plants are
// re-rolled; a stored golden or rainbow variant is kept.
func (e *Engine) HarvestVariant(p *domain.Plant, sprinklerActive bool) domain.Variant {
	if p.Variant == "" || p.Variant == domain.VariantNormal {
		return e.RollVariant(sprinklerActive)
	}
	return p.Variant
}

// VariantMultiplier returns the payout multiplier for a variant
func VariantMultiplier(v domain.Variant) int {
	switch v {
	case domain.VariantRainbow:
		return RainbowMultiplier
	case domain.VariantGolden:
		return GoldenMultiplier
	default:
		return NormalMultiplier
	}
}

// CalculatePayout computes harvest earnings. template may be nil when the
// seed type is no longer in the catalog.
func (e *Engine) CalculatePayout(p *domain.Plant, variant domain.Variant, template *domain.Seed) int {
	basePrice := 0
	sizeMultiplier := 1.0
	if template != nil {
		basePrice = template.SellPrice
		if template.BaseSizeKg > 0 {
			sizeMultiplier = p.SizeKg / template.BaseSizeKg
		}
	}
	if basePrice <= 0 {
		basePrice = p.SellPrice
	}
	if basePrice <= 0 {
		basePrice = FallbackSellPrice
	}

	return int(math.Round(float64(basePrice) * float64(VariantMultiplier(variant)) * sizeMultiplier))
}
