package routers

import (
	schicht_handlers "github.com/Xenn-00/schicht-meister/internal/handlers/schicht"
	"github.com/Xenn-00/schicht-meister/internal/i18n"
	"github.com/Xenn-00/schicht-meister/internal/middleware"
	"github.com/Xenn-00/schicht-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func SchichtRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/schichten", middleware.AuthMiddleware(paseto))
	schichtHandler := schicht_handlers.NewSchichtHandler(db, redis, i18n)

	r.Post("/sign-on", schichtHandler.SignOn)
	r.Post("/sign-off", schichtHandler.SignOff)
	r.Get("/current", schichtHandler.CurrentSchicht)
	r.Get("/list", schichtHandler.ListSchichten)
}
