package routers

import (
	"fmt"
	"time"

	"github.com/Xenn-00/schicht-meister/internal/config"
	report_handlers "github.com/Xenn-00/schicht-meister/internal/handlers/report"
	"github.com/Xenn-00/schicht-meister/internal/i18n"
	"github.com/Xenn-00/schicht-meister/internal/middleware"
	"github.com/Xenn-00/schicht-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ReportRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfg *config.AppConfig, cfgStorage CfgRedisStorage) {
	r := api.Group("/reports", middleware.AuthMiddleware(paseto))
	reportHandler := report_handlers.NewReportHandler(db, redis, i18n, cfg)

	// prepare redis storage for rate limiter fiber
	host, port := splitRedisAddr(cfgStorage.Host)
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Password: cfgStorage.Password,
		Port:     port,
		Database: 1,
	})

	r.Get("/timeline", reportHandler.GetTimeline)
	r.Get("/statistics", reportHandler.GetStatistics)
	// E-Mail-Versand ist teuer, deshalb strenger limitiert als die Lese-Endpoints
	r.Post("/email", limiter.New(limiter.Config{
		Max:        3,
		Expiration: 30 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			ownerID := c.Locals("owner_id")
			if ownerID == nil {
				return "report_email:ip:" + c.IP() // fallback to ip
			}
			return fmt.Sprintf("report_email:%v", ownerID)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	}), reportHandler.EmailPayReport)
}
