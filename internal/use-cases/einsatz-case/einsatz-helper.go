package einsatz_case

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Xenn-00/schicht-meister/internal/category"
	"github.com/Xenn-00/schicht-meister/internal/entity"
	"github.com/Xenn-00/schicht-meister/internal/utils"
)

// categoryLabel liefert das Anzeige-Label, leere Kategorie bleibt leer.
func categoryLabel(id entity.CategoryID) string {
	if id == "" {
		return ""
	}
	info, err := category.Resolve(id)
	if err != nil {
		return string(id)
	}
	return info.Label
}

// deleteReportCache wirft alle gecachten Report-Antworten des Owners weg.
// Jeder Schreibzugriff auf Einsaetze oder Schichten macht sie ungültig.
func deleteReportCache(ctx context.Context, rdb *redis.Client, ownerID string) error {
	return utils.DeleteCacheByPattern(ctx, rdb, fmt.Sprintf("report:%s:*", ownerID))
}
