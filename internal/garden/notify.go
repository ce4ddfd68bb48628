package garden

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// sprintf formats with English digit grouping ("2,500 coins")
func sprintf(format string, a ...any) string {
	return message.NewPrinter(language.English).Sprintf(format, a...)
}

func harvestNotification(h *HarvestResult) domain.Notification {
	variant := ""
	if h.Variant != domain.VariantNormal {
		variant = cases.Title(language.English).String(string(h.Variant))
	}
	return domain.Notification{
		Kind:        domain.NotificationHarvest,
		Title:       sprintf(MsgHarvestTitle, h.SeedType),
		Description: strings.TrimLeft(sprintf(MsgHarvestDescription, variant, h.SeedType, h.SizeKg, h.Earnings), " "),
	}
}

func seedBoughtNotification(seed domain.Seed) domain.Notification {
	return domain.Notification{
		Kind:        domain.NotificationPurchase,
		Title:       MsgSeedBoughtTitle,
		Description: sprintf(MsgSeedBoughtDesc, seed.Name, seed.Price),
	}
}

func gearBoughtNotification(gear domain.Gear, gridSize int) domain.Notification {
	desc := sprintf(MsgGearBoughtDesc, gear.Name, gear.Price)
	switch gear.Type {
	case domain.GearSprinkler:
		desc = MsgSprinklerDesc
	case domain.GearPlotUpgrade:
		desc = sprintf(MsgPlotUpgradeDesc, gridSize, gridSize)
	}
	return domain.Notification{
		Kind:        domain.NotificationPurchase,
		Title:       MsgGearBoughtTitle,
		Description: desc,
	}
}

func exchangeNotification(xp, coins int) domain.Notification {
	return domain.Notification{
		Kind:        domain.NotificationExchange,
		Title:       MsgExchangeTitle,
		Description: sprintf(MsgExchangeDesc, xp, coins),
	}
}

func restockNotification(title string) domain.Notification {
	return domain.Notification{
		Kind:        domain.NotificationRestock,
		Title:       title,
		Description: MsgRestockDescription,
	}
}

func wiltNotification(seedType string) domain.Notification {
	return domain.Notification{
		Kind:        domain.NotificationWilt,
		Title:       MsgWiltTitle,
		Description: sprintf(MsgWiltDescription, seedType),
	}
}
