package garden

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// testEpoch is a fixed wall clock for deterministic tests
var testEpoch = time.UnixMilli(1_700_000_000_000)

// fixedRand returns a random source that always yields v.
// 0.5 gives zero size variance and a normal variant.
func fixedRand(v float64) func() float64 {
	return func() float64 { return v }
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestReducer(rnd float64) *Reducer {
	return NewReducer(
		NewEngine(fixedRand(rnd)),
		NewRestocker(sequentialIDs("listing")),
		sequentialIDs("plant"),
	)
}

// stockedGarden is a brand new garden with both shops populated
func stockedGarden(t *testing.T, r *Reducer) domain.GardenState {
	t.Helper()
	state, _, err := r.Apply(NewGardenState(testEpoch), Restock{}, testEpoch)
	require.NoError(t, err)
	return state
}

func seedListing(t *testing.T, state domain.GardenState, name string) domain.Seed {
	t.Helper()
	for _, s := range state.SeedShop {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("seed %q not in shop", name)
	return domain.Seed{}
}

func gearListing(t *testing.T, state domain.GardenState, gearType domain.GearType) domain.Gear {
	t.Helper()
	for _, g := range state.GearShop {
		if g.Type == gearType {
			return g
		}
	}
	t.Fatalf("gear %q not in shop", gearType)
	return domain.Gear{}
}

func seedTemplate(t *testing.T, name string) domain.Seed {
	t.Helper()
	seed, ok := FindSeedTemplate(name)
	require.True(t, ok)
	return *seed
}

func plantedGarden(t *testing.T, r *Reducer, seeds ...string) domain.GardenState {
	t.Helper()
	state := stockedGarden(t, r)
	state.Money = 100_000
	for i, name := range seeds {
		var err error
		listing := seedListing(t, state, name)
		state, _, err = r.Apply(state, BuySeed{SeedID: listing.ID}, testEpoch)
		require.NoError(t, err)
		state, _, err = r.Apply(state, PlantSeed{PlotID: fmt.Sprintf("plot-%d", i), SeedID: listing.ID}, testEpoch)
		require.NoError(t, err)
	}
	return state
}
