package domain

// Variant is the rarity tier of a harvested plant
type Variant string

const (
	VariantNormal  Variant = "normal"
	VariantGolden  Variant = "golden"
	VariantRainbow Variant = "rainbow"
)

// Rarity classifies seed templates in the shop
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
	RarityMythic   Rarity = "mythic"
)

// GearType identifies what a piece of gear does when bought
type GearType string

const (
	GearWateringCan GearType = "wateringCan"
	GearSprinkler   GearType = "sprinkler"
	GearPlotUpgrade GearType = "plotUpgrade"
)

// Plant is a seed growing in a plot. Timestamps are epoch milliseconds.
type Plant struct {
	ID            string  `json:"id"`
	SeedType      string  `json:"seedType"`
	PlantedAt     int64   `json:"plantedAt"`
	GrowthTimeMs  int64   `json:"growthTimeMs"`
	LastWateredAt int64   `json:"lastWateredAt"`
	IsWilted      bool    `json:"isWilted"`
	Variant       Variant `json:"variant"`
	SizeKg        float64 `json:"sizeKg"`
	SellPrice     int     `json:"sellPrice"`
}

// Plot is one slot of the garden grid. A plot owns at most one plant.
type Plot struct {
	ID    string `json:"id"`
	Plant *Plant `json:"plant,omitempty"`
}

// Seed is a seed template or a purchased seed instance.
// BaseGrowthTime is expressed in minutes.
type Seed struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Rarity         Rarity  `json:"rarity"`
	BaseGrowthTime int     `json:"baseGrowthTime"`
	BaseSizeKg     float64 `json:"baseSizeKg"`
	Price          int     `json:"price"`
	SellPrice      int     `json:"sellPrice"`
	Icon           string  `json:"icon"`
}

// Gear is a gear template or a purchased gear instance
type Gear struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Type   GearType `json:"type"`
	Effect string   `json:"effect"`
	Price  int      `json:"price"`
	Icon   string   `json:"icon"`
}

// Inventory holds everything the player owns but has not used yet
type Inventory struct {
	Seeds []Seed `json:"seeds"`
	Gear  []Gear `json:"gear"`
}

// GardenState is the whole persisted aggregate of one garden session
type GardenState struct {
	SchemaVersion   string    `json:"schemaVersion"`
	XP              int       `json:"xp"`
	Money           int       `json:"money"`
	GridSize        int       `json:"gridSize"`
	Plots           []Plot    `json:"plots"`
	Inventory       Inventory `json:"inventory"`
	HasSprinkler    bool      `json:"hasSprinkler"`
	SeedRestockTime int64     `json:"seedRestockTime"`
	GearRestockTime int64     `json:"gearRestockTime"`
	SeedShop        []Seed    `json:"seedShop,omitempty"`
	GearShop        []Gear    `json:"gearShop,omitempty"`
}

// FindPlot returns the index of the plot with the given id, or -1
func (s *GardenState) FindPlot(plotID string) int {
	for i := range s.Plots {
		if s.Plots[i].ID == plotID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state
func (s GardenState) Clone() GardenState {
	out := s
	out.Plots = make([]Plot, len(s.Plots))
	for i, p := range s.Plots {
		out.Plots[i] = Plot{ID: p.ID}
		if p.Plant != nil {
			plant := *p.Plant
			out.Plots[i].Plant = &plant
		}
	}
	out.Inventory.Seeds = append([]Seed{}, s.Inventory.Seeds...)
	out.Inventory.Gear = append([]Gear{}, s.Inventory.Gear...)
	if s.SeedShop != nil {
		out.SeedShop = append([]Seed{}, s.SeedShop...)
	}
	if s.GearShop != nil {
		out.GearShop = append([]Gear{}, s.GearShop...)
	}
	return out
}

// NotificationKind tags a notification for filtering by subscribers
type NotificationKind string

const (
	NotificationHarvest  NotificationKind = "harvest"
	NotificationPurchase NotificationKind = "purchase"
	NotificationExchange NotificationKind = "exchange"
	NotificationRestock  NotificationKind = "restock"
	NotificationWilt     NotificationKind = "wilt"
)

// Notification is a short human-readable message for the player
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}
