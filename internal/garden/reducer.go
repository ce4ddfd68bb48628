package garden

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// Reducer applies actions to a garden state. It never mutates its input:
// Apply works on a deep copy and returns the input unchanged on error.
type Reducer struct {
	engine    *Engine
	restocker *Restocker
	newID     func() string
}

// NewReducer creates a reducer. A nil newID mints UUIDs.
func NewReducer(engine *Engine, restocker *Restocker, newID func() string) *Reducer {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Reducer{engine: engine, restocker: restocker, newID: newID}
}

// Apply dispatches a single action
func (r *Reducer) Apply(state domain.GardenState, action Action, now time.Time) (domain.GardenState, Outcome, error) {
	next := state.Clone()
	var out Outcome
	var err error

	switch a := action.(type) {
	case PlantSeed:
		err = r.plant(&next, a, now, &out)
	case WaterPlant:
		err = r.water(&next, a, now, &out)
	case HarvestPlant:
		err = r.harvest(&next, a, now, &out)
	case BuySeed:
		err = r.buySeed(&next, a, &out)
	case BuyGear:
		err = r.buyGear(&next, a, &out)
	case ExchangeXP:
		err = r.exchange(&next, a, &out)
	case CreditXP:
		err = r.creditXP(&next, a, &out)
	case Tick:
		r.tick(&next, now, &out)
	case Restock:
		r.restocker.Populate(&next)
		out.Changed = true
	default:
		err = fmt.Errorf("%w: %T", domain.ErrUnknownAction, action)
	}

	if err != nil {
		return state, Outcome{}, err
	}
	return next, out, nil
}

func (r *Reducer) plot(state *domain.GardenState, plotID string) (*domain.Plot, error) {
	idx := state.FindPlot(plotID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlotNotFound, plotID)
	}
	return &state.Plots[idx], nil
}

func (r *Reducer) plant(state *domain.GardenState, a PlantSeed, now time.Time, out *Outcome) error {
	plot, err := r.plot(state, a.PlotID)
	if err != nil {
		return err
	}
	if plot.Plant != nil {
		return fmt.Errorf("%w: %s", domain.ErrPlotOccupied, a.PlotID)
	}

	seedIdx := -1
	for i, s := range state.Inventory.Seeds {
		if s.ID == a.SeedID {
			seedIdx = i
			break
		}
	}
	if seedIdx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrSeedNotOwned, a.SeedID)
	}

	seed := state.Inventory.Seeds[seedIdx]
	plot.Plant = r.engine.NewPlant(r.newID(), seed, now)
	state.Inventory.Seeds = append(state.Inventory.Seeds[:seedIdx], state.Inventory.Seeds[seedIdx+1:]...)
	out.Changed = true
	return nil
}

func (r *Reducer) water(state *domain.GardenState, a WaterPlant, now time.Time, out *Outcome) error {
	plot, err := r.plot(state, a.PlotID)
	if err != nil {
		return err
	}
	if plot.Plant == nil {
		return fmt.Errorf("%w: %s", domain.ErrPlotEmpty, a.PlotID)
	}

	r.engine.Water(plot.Plant, now)
	out.Changed = true
	return nil
}

func (r *Reducer) harvest(state *domain.GardenState, a HarvestPlant, now time.Time, out *Outcome) error {
	plot, err := r.plot(state, a.PlotID)
	if err != nil {
		return err
	}
	if plot.Plant == nil {
		return fmt.Errorf("%w: %s", domain.ErrPlotEmpty, a.PlotID)
	}
	plant := plot.Plant
	if !r.engine.IsReady(plant, now) {
		return fmt.Errorf("%w: %s ready in %s", domain.ErrPlantNotReady, plant.SeedType,
			r.engine.TimeLeft(plant, now).Round(time.Second))
	}

	variant := r.engine.HarvestVariant(plant, state.HasSprinkler)
	template, _ := FindSeedTemplate(plant.SeedType)
	earnings := r.engine.CalculatePayout(plant, variant, template)

	state.Money += earnings
	plot.Plant = nil

	out.Harvest = &HarvestResult{
		PlotID:     a.PlotID,
		SeedType:   plant.SeedType,
		Variant:    variant,
		SizeKg:     plant.SizeKg,
		Multiplier: VariantMultiplier(variant),
		Earnings:   earnings,
	}
	out.notify(harvestNotification(out.Harvest))
	out.Changed = true
	return nil
}

func (r *Reducer) buySeed(state *domain.GardenState, a BuySeed, out *Outcome) error {
	var listing *domain.Seed
	for i := range state.SeedShop {
		if state.SeedShop[i].ID == a.SeedID {
			listing = &state.SeedShop[i]
			break
		}
	}
	if listing == nil {
		return fmt.Errorf("%w: %s", domain.ErrSeedNotInShop, a.SeedID)
	}
	if state.Money < listing.Price {
		return fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, listing.Name, listing.Price, state.Money)
	}

	state.Money -= listing.Price
	state.Inventory.Seeds = append(state.Inventory.Seeds, *listing)
	out.notify(seedBoughtNotification(*listing))
	out.Changed = true
	return nil
}

func (r *Reducer) buyGear(state *domain.GardenState, a BuyGear, out *Outcome) error {
	var listing *domain.Gear
	for i := range state.GearShop {
		if state.GearShop[i].ID == a.GearID {
			listing = &state.GearShop[i]
			break
		}
	}
	if listing == nil {
		return fmt.Errorf("%w: %s", domain.ErrGearNotInShop, a.GearID)
	}

	switch listing.Type {
	case domain.GearSprinkler:
		if state.HasSprinkler {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, listing.Name)
		}
	case domain.GearPlotUpgrade:
		if state.GridSize >= domain.MaxGridSize {
			return fmt.Errorf("%w: %dx%d", domain.ErrGridAtMaximum, state.GridSize, state.GridSize)
		}
	}
	if state.Money < listing.Price {
		return fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, listing.Name, listing.Price, state.Money)
	}

	state.Money -= listing.Price
	switch listing.Type {
	case domain.GearSprinkler:
		// Owning it is the flag alone; it never appears in the inventory.
		state.HasSprinkler = true
	case domain.GearPlotUpgrade:
		// Resizing discards every plot and the plants in them.
		state.GridSize++
		state.Plots = NewPlots(state.GridSize)
	default:
		state.Inventory.Gear = append(state.Inventory.Gear, *listing)
	}

	out.notify(gearBoughtNotification(*listing, state.GridSize))
	out.Changed = true
	return nil
}

func (r *Reducer) exchange(state *domain.GardenState, a ExchangeXP, out *Outcome) error {
	if a.Amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, a.Amount)
	}
	if a.Amount > state.XP {
		return fmt.Errorf("%w: requested %d, have %d", domain.ErrInsufficientXP, a.Amount, state.XP)
	}

	coins := a.Amount * ExchangeRate
	state.XP -= a.Amount
	state.Money += coins
	out.notify(exchangeNotification(a.Amount, coins))
	out.Changed = true
	return nil
}

func (r *Reducer) creditXP(state *domain.GardenState, a CreditXP, out *Outcome) error {
	if a.Amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, a.Amount)
	}
	state.XP += a.Amount
	out.Changed = true
	return nil
}

func (r *Reducer) tick(state *domain.GardenState, now time.Time, out *Outcome) {
	seeds, gear := r.restocker.ApplyDue(state, now)
	if seeds {
		out.notify(restockNotification(MsgSeedShopRestocked))
	}
	if gear {
		out.notify(restockNotification(MsgGearShopRestocked))
	}
	out.Changed = seeds || gear

	for i := range state.Plots {
		plant := state.Plots[i].Plant
		if plant == nil {
			continue
		}
		if r.engine.CheckWilt(plant, now) {
			out.notify(wiltNotification(plant.SeedType))
			out.Changed = true
		}
	}
}
