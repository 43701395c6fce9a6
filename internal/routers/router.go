package routers

import (
	"strconv"
	"strings"

	"github.com/Xenn-00/schicht-meister/internal/config"
	"github.com/Xenn-00/schicht-meister/internal/i18n"
	"github.com/Xenn-00/schicht-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type CfgRedisStorage struct {
	Host     string
	Password string
}

// splitRedisAddr zerlegt "host:port" in Host und Port; fehlt der Port oder ist
// er nicht numerisch, wird der Redis-Default 6379 verwendet.
func splitRedisAddr(addr string) (string, int) {
	parts := strings.Split(addr, ":")
	port := 6379
	if len(parts) == 2 {
		if p, err := strconv.Atoi(parts[1]); err == nil {
			port = p
		}
	}
	return parts[0], port
}

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfg *config.AppConfig, cfgStorage CfgRedisStorage) {
	api := app.Group("/api/v1")

	EinsatzRouter(api, db, redis, i18n, paseto, cfg)
	SchichtRouter(api, db, redis, i18n, paseto)
	ReportRouter(api, db, redis, i18n, paseto, cfg, cfgStorage)
	HealthRouter(api, db, redis)
}
