package handler

import (
	"net/http"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// PlotRequest targets one plot (water, harvest)
type PlotRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	PlotID    string `json:"plot_id" validate:"required,max=100"`
}

// PlantRequest plants an owned seed into a plot
type PlantRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	PlotID    string `json:"plot_id" validate:"required,max=100"`
	SeedID    string `json:"seed_id" validate:"required,max=100"`
}

// BuySeedRequest buys a seed listing
type BuySeedRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	SeedID    string `json:"seed_id" validate:"required,max=100"`
}

// BuyGearRequest buys a gear listing
type BuyGearRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	GearID    string `json:"gear_id" validate:"required,max=100"`
}

// ExchangeRequest trades XP for coins. Non-positive amounts are rejected by the garden.
type ExchangeRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	Amount    int    `json:"amount" validate:"max=1000000"`
}

// CreditXPRequest adds XP earned outside the garden
type CreditXPRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	Amount    int    `json:"amount" validate:"min=1,max=10000"`
}

// CatalogResponse lists the fixed seed and gear templates
type CatalogResponse struct {
	Seeds        []domain.Seed `json:"seeds"`
	Gear         []domain.Gear `json:"gear"`
	ExchangeRate int           `json:"exchange_rate"`
}

// GardenHandler serves the garden API
type GardenHandler struct {
	svc garden.Service
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(svc garden.Service) *GardenHandler {
	return &GardenHandler{svc: svc}
}

// GetGarden returns the garden view, creating the garden on first access
// @Summary Get garden
// @Description Returns plots with growth progress, inventory, shops and restock countdowns
// @Tags garden
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} garden.GardenView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/garden [get]
func (h *GardenHandler) GetGarden(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
	if !ok {
		return
	}

	view, err := h.svc.View(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, "Get garden", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// ResetGarden deletes a saved garden
// @Summary Reset garden
// @Tags garden
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/garden [delete]
func (h *GardenHandler) ResetGarden(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
	if !ok {
		return
	}

	if err := h.svc.Reset(r.Context(), sessionID); err != nil {
		respondServiceError(w, r, "Reset garden", err)
		return
	}
	logger.FromContext(r.Context()).Info("Garden reset", logger.AttrKeySessionID, sessionID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGardenReset})
}

// Plant plants a seed
// @Summary Plant a seed
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 200 {object} garden.ActionResult
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Plot occupied, plot missing or seed not owned"
// @Router /api/v1/garden/plant [post]
func (h *GardenHandler) Plant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}
	h.respondAction(w, r, "Plant")(h.svc.Plant(r.Context(), req.SessionID, req.PlotID, req.SeedID))
}

// Water waters a plant
// @Summary Water a plant
// @Description Halves the remaining growth time and clears wilting
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Water request"
// @Success 200 {object} garden.ActionResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Plot empty or missing"
// @Router /api/v1/garden/water [post]
func (h *GardenHandler) Water(w http.ResponseWriter, r *http.Request) {
	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Water"); err != nil {
		return
	}
	h.respondAction(w, r, "Water")(h.svc.Water(r.Context(), req.SessionID, req.PlotID))
}

// Harvest harvests a ready plant
// @Summary Harvest a plant
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Harvest request"
// @Success 200 {object} garden.ActionResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Plant not ready, plot empty or missing"
// @Router /api/v1/garden/harvest [post]
func (h *GardenHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}
	h.respondAction(w, r, "Harvest")(h.svc.Harvest(r.Context(), req.SessionID, req.PlotID))
}

// BuySeed buys a seed
// @Summary Buy a seed
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuySeedRequest true "Purchase request"
// @Success 200 {object} garden.ActionResult
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Failure 409 {object} ErrorResponse "Listing not found"
// @Router /api/v1/garden/shop/seeds/buy [post]
func (h *GardenHandler) BuySeed(w http.ResponseWriter, r *http.Request) {
	var req BuySeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy seed"); err != nil {
		return
	}
	h.respondAction(w, r, "Buy seed")(h.svc.BuySeed(r.Context(), req.SessionID, req.SeedID))
}

// BuyGear buys gear
// @Summary Buy gear
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyGearRequest true "Purchase request"
// @Success 200 {object} garden.ActionResult
// @Failure 400 {object} ErrorResponse "Not enough coins, already owned or garden at maximum size"
// @Failure 409 {object} ErrorResponse "Listing not found"
// @Router /api/v1/garden/shop/gear/buy [post]
func (h *GardenHandler) BuyGear(w http.ResponseWriter, r *http.Request) {
	var req BuyGearRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy gear"); err != nil {
		return
	}
	h.respondAction(w, r, "Buy gear")(h.svc.BuyGear(r.Context(), req.SessionID, req.GearID))
}

// Exchange trades XP for coins
// @Summary Exchange XP for coins
// @Description 1 XP buys 2 coins
// @Tags economy
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Exchange request"
// @Success 200 {object} garden.ActionResult
// @Failure 400 {object} ErrorResponse "Invalid amount or not enough XP"
// @Router /api/v1/garden/exchange [post]
func (h *GardenHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req ExchangeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Exchange"); err != nil {
		return
	}
	h.respondAction(w, r, "Exchange")(h.svc.ExchangeXP(r.Context(), req.SessionID, req.Amount))
}

// CreditXP adds XP earned from lessons
// @Summary Credit XP
// @Tags economy
// @Accept json
// @Produce json
// @Param request body CreditXPRequest true "Credit request"
// @Success 200 {object} garden.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/garden/xp [post]
func (h *GardenHandler) CreditXP(w http.ResponseWriter, r *http.Request) {
	var req CreditXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Credit XP"); err != nil {
		return
	}
	h.respondAction(w, r, "Credit XP")(h.svc.CreditXP(r.Context(), req.SessionID, req.Amount))
}

// Catalog lists every seed and gear template
// @Summary Shop catalog
// @Tags shop
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func (h *GardenHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogResponse{
		Seeds:        garden.SeedTemplates(),
		Gear:         garden.GearTemplates(),
		ExchangeRate: garden.ExchangeRate,
	})
}

func (h *GardenHandler) respondAction(w http.ResponseWriter, r *http.Request, opName string) func(*garden.ActionResult, error) {
	return func(res *garden.ActionResult, err error) {
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
