package routers

import (
	"github.com/Xenn-00/schicht-meister/internal/config"
	einsatz_handlers "github.com/Xenn-00/schicht-meister/internal/handlers/einsatz"
	"github.com/Xenn-00/schicht-meister/internal/i18n"
	"github.com/Xenn-00/schicht-meister/internal/middleware"
	"github.com/Xenn-00/schicht-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func EinsatzRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfg *config.AppConfig) {
	r := api.Group("/einsaetze", middleware.AuthMiddleware(paseto))
	einsatzHandler := einsatz_handlers.NewEinsatzHandler(db, redis, i18n, cfg)

	r.Post("/create", einsatzHandler.CreateEinsatz)
	r.Get("/list", einsatzHandler.ListEinsaetze)
	r.Post("/close-open", einsatzHandler.CloseOpenEinsaetze)
	r.Get("/:einsatz_id", einsatzHandler.GetEinsatzDetails)
	r.Patch("/:einsatz_id", einsatzHandler.UpdateEinsatz)
	r.Delete("/:einsatz_id", einsatzHandler.DeleteEinsatz)
	r.Post("/:einsatz_id/check-end-time", einsatzHandler.CheckEndTime)
}
