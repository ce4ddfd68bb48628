package garden

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// Restocker regenerates shop listings on fixed schedules
type Restocker struct {
	newID func() string
}

// NewRestocker creates a restocker. A nil newID mints UUIDs.
func NewRestocker(newID func() string) *Restocker {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Restocker{newID: newID}
}

// RestockSeeds relists the full seed catalog with fresh instance ids and
// schedules the next restock.
func (r *Restocker) RestockSeeds(state *domain.GardenState, now time.Time) {
	state.SeedShop = r.seedListings()
	state.SeedRestockTime = now.Add(SeedRestockInterval).UnixMilli()
}

// RestockGear relists the gear catalog and schedules the next restock
func (r *Restocker) RestockGear(state *domain.GardenState, now time.Time) {
	state.GearShop = r.gearListings()
	state.GearRestockTime = now.Add(GearRestockInterval).UnixMilli()
}

// ApplyDue restocks every shop whose deadline has passed
func (r *Restocker) ApplyDue(state *domain.GardenState, now time.Time) (seeds, gear bool) {
	nowMs := now.UnixMilli()
	if nowMs >= state.SeedRestockTime {
		r.RestockSeeds(state, now)
		seeds = true
	}
	if nowMs >= state.GearRestockTime {
		r.RestockGear(state, now)
		gear = true
	}
	return seeds, gear
}

// Populate fills both shops without moving the restock deadlines.
// Used once when a session starts.
func (r *Restocker) Populate(state *domain.GardenState) {
	state.SeedShop = r.seedListings()
	state.GearShop = r.gearListings()
}

func (r *Restocker) seedListings() []domain.Seed {
	listings := SeedTemplates()
	for i := range listings {
		listings[i].ID = r.newID()
	}
	return listings
}

func (r *Restocker) gearListings() []domain.Gear {
	listings := GearTemplates()
	for i := range listings {
		listings[i].ID = r.newID()
	}
	return listings
}
