package garden

import "github.com/osse101/GardenBot_Go/internal/domain"

// seedCatalog is the fixed list of seed templates. Every restock lists all of them.
var seedCatalog = []domain.Seed{
	{Name: "Radish", Rarity: domain.RarityCommon, BaseGrowthTime: 1, BaseSizeKg: 0.2, Price: 10, SellPrice: 18, Icon: "🌱"},
	{Name: "Carrot", Rarity: domain.RarityCommon, BaseGrowthTime: 2, BaseSizeKg: 0.3, Price: 20, SellPrice: 35, Icon: "🥕"},
	{Name: "Lettuce", Rarity: domain.RarityCommon, BaseGrowthTime: 3, BaseSizeKg: 0.5, Price: 30, SellPrice: 50, Icon: "🥬"},
	{Name: "Tomato", Rarity: domain.RarityUncommon, BaseGrowthTime: 5, BaseSizeKg: 0.4, Price: 60, SellPrice: 100, Icon: "🍅"},
	{Name: "Corn", Rarity: domain.RarityUncommon, BaseGrowthTime: 8, BaseSizeKg: 0.6, Price: 100, SellPrice: 165, Icon: "🌽"},
	{Name: "Strawberry", Rarity: domain.RarityRare, BaseGrowthTime: 12, BaseSizeKg: 0.1, Price: 180, SellPrice: 300, Icon: "🍓"},
	{Name: "Pumpkin", Rarity: domain.RarityRare, BaseGrowthTime: 20, BaseSizeKg: 5.0, Price: 300, SellPrice: 500, Icon: "🎃"},
	{Name: "Watermelon", Rarity: domain.RarityEpic, BaseGrowthTime: 30, BaseSizeKg: 8.0, Price: 600, SellPrice: 1000, Icon: "🍉"},
	{Name: "Dragon Fruit", Rarity: domain.RarityEpic, BaseGrowthTime: 45, BaseSizeKg: 0.8, Price: 1000, SellPrice: 1700, Icon: "🐉"},
	{Name: "Starfruit", Rarity: domain.RarityMythic, BaseGrowthTime: 60, BaseSizeKg: 0.3, Price: 2500, SellPrice: 4200, Icon: "⭐"},
}

var gearCatalog = []domain.Gear{
	{Name: "Watering Can", Type: domain.GearWateringCan, Effect: "Water plants to halve their remaining growth time", Price: 100, Icon: "🚿"},
	{Name: "Sprinkler", Type: domain.GearSprinkler, Effect: "Golden and rainbow harvests are 1.5x more likely", Price: 1500, Icon: "💦"},
	{Name: "Plot Upgrade", Type: domain.GearPlotUpgrade, Effect: "Grow the garden by one row and column (clears all plots)", Price: 3000, Icon: "🧱"},
}

// SeedTemplates returns a copy of the seed catalog
func SeedTemplates() []domain.Seed {
	return append([]domain.Seed(nil), seedCatalog...)
}

// GearTemplates returns a copy of the gear catalog
func GearTemplates() []domain.Gear {
	return append([]domain.Gear(nil), gearCatalog...)
}

// FindSeedTemplate looks up a seed template by name
func FindSeedTemplate(name string) (*domain.Seed, bool) {
	for i := range seedCatalog {
		if seedCatalog[i].Name == name {
			seed := seedCatalog[i]
			return &seed, true
		}
	}
	return nil, false
}
