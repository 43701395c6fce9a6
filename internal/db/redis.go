package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisPool erstellt einen konfigurierten Redis-Client und prüft die Erreichbarkeit.
// RedisPool nimmt die Verbindungsparameter addr (host:port), password (leer = keine Auth)
// und db (DB-Index) entgegen. Der Caller ist verantwortlich dafür, den Client mit
// client.Close() zu schließen, wenn er nicht mehr benötigt wird.
func RedisPool(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     20,
		MaxIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Vor der Rückgabe ein PING ausführen; ohne erreichbares Redis startet weder
	// Cache noch Worker-Queue sinnvoll.
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Erstellen des Redis-Pools")
		return nil, fmt.Errorf("Verbindung zu Redis nicht möglich: %w", err)
	}

	return rdb, nil
}
