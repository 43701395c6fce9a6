package category

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Xenn-00/schicht-meister/internal/entity"
	app_errors "github.com/Xenn-00/schicht-meister/internal/errors"
)

// Info describes a single category: display label plus whether worked minutes
// in it count towards pay.
type Info struct {
	ID      entity.CategoryID `json:"id"`
	Label   string            `json:"label"`
	Payable bool              `json:"payable"`
}

// registry is the closed category table. Aggregation is keyed by entity.CategoryID,
// so an unknown category can never appear in a report accumulator.
var registry = []Info{
	{ID: entity.CategoryPhoneCall, Label: "Phone call", Payable: true},
	{ID: entity.CategoryFieldWork, Label: "Field work", Payable: true},
	{ID: entity.CategoryDelivery, Label: "Delivery", Payable: true},
	{ID: entity.CategoryTraining, Label: "Training", Payable: true},
	{ID: entity.CategoryBreak, Label: "Break", Payable: false},
	{ID: entity.CategoryAdmin, Label: "Admin", Payable: false},
}

var byID = func() map[entity.CategoryID]Info {
	m := make(map[entity.CategoryID]Info, len(registry))
	for _, info := range registry {
		m[info.ID] = info
	}
	return m
}()

// Resolve returns the registry entry for id, or NOT_FOUND when the id is unknown.
func Resolve(id entity.CategoryID) (Info, *app_errors.AppError) {
	info, ok := byID[id]
	if !ok {
		return Info{}, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "category.not_found", nil)
	}
	return info, nil
}

// IsKnown reports whether id names a registered category.
func IsKnown(id entity.CategoryID) bool {
	_, ok := byID[id]
	return ok
}

// AllCategories returns the registry in its fixed declaration order.
func AllCategories() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// PayRateFactorFor returns the deterministic pay multiplier (>= 1.0) for a
// category. Every current category pays the base rate; the hook exists so a
// future variable-rate policy only has to change this table.
func PayRateFactorFor(id entity.CategoryID) float64 {
	switch id {
	default:
		return 1.0
	}
}
