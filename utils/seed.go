package utils

import (
	"context"
	"errors"
	"time"

	"debategame/db"
	"debategame/models"

	"github.com/rs/zerolog"
)

// SeedDemoUsers creates a couple of demo accounts so a fresh deployment can
// be exercised immediately. Creation is idempotent: existing usernames are
// left alone.
func SeedDemoUsers(store db.Store, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, username := range []string{"alice", "bob"} {
		now := time.Now()
		user := &models.User{Username: username, CreatedAt: now, UpdatedAt: now}
		err := store.CreateUser(ctx, user)
		if err != nil && !errors.Is(err, db.ErrDuplicate) {
			logger.Warn().Err(err).Str("username", username).Msg("failed to seed demo user")
		}
	}
}
