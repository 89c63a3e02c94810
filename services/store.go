package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Store owns checklists and their task items. Every method runs against the
// request context; mutations commit exactly once.
type Store struct {
	db     *gorm.DB
	mirror Mirror
	log    zerolog.Logger
}

func NewStore(db *gorm.DB, mirror Mirror, log zerolog.Logger) *Store {
	if mirror == nil {
		mirror = NopMirror{}
	}
	return &Store{
		db:     db,
		mirror: mirror,
		log:    log.With().Str("component", "store").Logger(),
	}
}

// DB exposes the underlying handle for housekeeping jobs.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// mirrorAfterCommit replays a committed change on the mirror. Mirror
// failures never fail the request.
func (s *Store) mirrorAfterCommit(ctx context.Context, what string, id int, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		s.log.Warn().Err(err).Str("entity", what).Int("id", id).Msg("mirror sync failed")
	}
}
