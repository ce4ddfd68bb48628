package garden

import (
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// PlantView is a plant plus its derived growth state at a point in time
type PlantView struct {
	domain.Plant
	Progress   float64 `json:"progress"`
	IsReady    bool    `json:"isReady"`
	TimeLeftMs int64   `json:"timeLeftMs"`
}

// PlotView is a plot as shown to the player
type PlotView struct {
	ID    string     `json:"id"`
	Plant *PlantView `json:"plant,omitempty"`
}

// GardenView is the read model served to clients. It is derived on every
// request and never persisted.
type GardenView struct {
	SessionID       string           `json:"sessionId"`
	XP              int              `json:"xp"`
	Money           int              `json:"money"`
	GridSize        int              `json:"gridSize"`
	HasSprinkler    bool             `json:"hasSprinkler"`
	Plots           []PlotView       `json:"plots"`
	Inventory       domain.Inventory `json:"inventory"`
	SeedShop        []domain.Seed    `json:"seedShop"`
	GearShop        []domain.Gear    `json:"gearShop"`
	SeedRestockInMs int64            `json:"seedRestockInMs"`
	GearRestockInMs int64            `json:"gearRestockInMs"`
	ExchangeRate    int              `json:"exchangeRate"`
}

// NewGardenView derives the read model of state at now
func NewGardenView(e *Engine, sessionID string, state domain.GardenState, now time.Time) GardenView {
	nowMs := now.UnixMilli()
	view := GardenView{
		SessionID:       sessionID,
		XP:              state.XP,
		Money:           state.Money,
		GridSize:        state.GridSize,
		HasSprinkler:    state.HasSprinkler,
		Plots:           make([]PlotView, len(state.Plots)),
		Inventory:       state.Clone().Inventory,
		SeedShop:        append([]domain.Seed{}, state.SeedShop...),
		GearShop:        append([]domain.Gear{}, state.GearShop...),
		SeedRestockInMs: max(0, state.SeedRestockTime-nowMs),
		GearRestockInMs: max(0, state.GearRestockTime-nowMs),
		ExchangeRate:    ExchangeRate,
	}

	for i, plot := range state.Plots {
		view.Plots[i] = PlotView{ID: plot.ID}
		if plot.Plant == nil {
			continue
		}
		view.Plots[i].Plant = &PlantView{
			Plant:      *plot.Plant,
			Progress:   e.Progress(plot.Plant, now),
			IsReady:    e.IsReady(plot.Plant, now),
			TimeLeftMs: e.TimeLeft(plot.Plant, now).Milliseconds(),
		}
	}
	return view
}
