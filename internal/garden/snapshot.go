package garden

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/utils"
)

// snapshotDoc mirrors domain.GardenState with pointer fields so that missing
// keys can be told apart from zero values on load.
type snapshotDoc struct {
	SchemaVersion   *string           `json:"schemaVersion"`
	XP              *int              `json:"xp"`
	Money           *int              `json:"money"`
	GridSize        *int              `json:"gridSize"`
	Plots           []domain.Plot     `json:"plots"`
	Inventory       *domain.Inventory `json:"inventory"`
	HasSprinkler    *bool             `json:"hasSprinkler"`
	SeedRestockTime *int64            `json:"seedRestockTime"`
	GearRestockTime *int64            `json:"gearRestockTime"`
	SeedShop        []domain.Seed     `json:"seedShop"`
	GearShop        []domain.Gear     `json:"gearShop"`
}

// NewPlots builds an empty gridSize x gridSize board (plot-0, plot-1, ...)
func NewPlots(gridSize int) []domain.Plot {
	plots := make([]domain.Plot, gridSize*gridSize)
	for i := range plots {
		plots[i] = domain.Plot{ID: fmt.Sprintf("plot-%d", i)}
	}
	return plots
}

// NewGardenState returns the state of a brand new garden
func NewGardenState(now time.Time) domain.GardenState {
	return domain.GardenState{
		SchemaVersion:   domain.GardenSchemaVersion,
		XP:              domain.StartingXP,
		Money:           domain.StartingMoney,
		GridSize:        domain.InitialGridSize,
		Plots:           NewPlots(domain.InitialGridSize),
		Inventory:       domain.Inventory{Seeds: []domain.Seed{}, Gear: []domain.Gear{}},
		HasSprinkler:    false,
		SeedRestockTime: now.Add(SeedRestockInterval).UnixMilli(),
		GearRestockTime: now.Add(GearRestockInterval).UnixMilli(),
	}
}

// EncodeSnapshot serializes the state as the persisted JSON document
func EncodeSnapshot(state domain.GardenState) ([]byte, error) {
	state.SchemaVersion = domain.GardenSchemaVersion
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode garden snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted document, filling defaults for any missing field
func DecodeSnapshot(data []byte, now time.Time) (domain.GardenState, error) {
	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.GardenState{}, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}

	state := NewGardenState(now)
	if doc.XP != nil {
		state.XP = *doc.XP
	}
	if doc.Money != nil {
		state.Money = *doc.Money
	}
	if doc.GridSize != nil {
		state.GridSize = utils.Clamp(*doc.GridSize, domain.InitialGridSize, domain.MaxGridSize)
	}
	// The board always holds gridSize*gridSize plots. A stored board of any
	// other length is replaced by an empty one, as a resize would.
	if len(doc.Plots) == state.GridSize*state.GridSize {
		state.Plots = doc.Plots
	} else {
		state.Plots = NewPlots(state.GridSize)
	}
	if doc.Inventory != nil {
		if doc.Inventory.Seeds != nil {
			state.Inventory.Seeds = doc.Inventory.Seeds
		}
		if doc.Inventory.Gear != nil {
			state.Inventory.Gear = doc.Inventory.Gear
		}
	}
	if doc.HasSprinkler != nil {
		state.HasSprinkler = *doc.HasSprinkler
	}
	if doc.SeedRestockTime != nil {
		state.SeedRestockTime = *doc.SeedRestockTime
	}
	if doc.GearRestockTime != nil {
		state.GearRestockTime = *doc.GearRestockTime
	}
	state.SeedShop = doc.SeedShop
	state.GearShop = doc.GearShop

	return state, nil
}
