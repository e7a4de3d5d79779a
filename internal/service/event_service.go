package service

import (
	"context"
	"encoding/json"

	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// EventService fans resource changes out to two places: the Redis PubSub
// channel feeding connected WebSocket clients, and the compliance recount
// queue consumed by the worker. Failures are logged, never surfaced — the
// originating write has already committed.
type EventService struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(rdb *redis.Client, log zerolog.Logger) *EventService {
	return &EventService{
		rdb: rdb,
		log: log.With().Str("component", "event_service").Logger(),
	}
}

// Publish broadcasts a change event to subscribed clients.
func (s *EventService) Publish(ctx context.Context, ev model.ChangeEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal event")
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.EventsChannel(), payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("entity", ev.Entity).Msg("Publish event failed")
	}
}

type complianceSyncJob struct {
	FamilyID     int `json:"family_id"`
	SchoolYearID int `json:"school_year_id"`
}

// EnqueueComplianceSync queues a day-count recount for the worker.
func (s *EventService) EnqueueComplianceSync(ctx context.Context, familyID, schoolYearID int) {
	payload, err := json.Marshal(complianceSyncJob{FamilyID: familyID, SchoolYearID: schoolYearID})
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal compliance job")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.SyncComplianceQueue, payload).Err(); err != nil {
		s.log.Warn().Err(err).Int("family_id", familyID).Msg("Enqueue compliance sync failed")
	}
}

// InvalidateDashboard drops the family's cached dashboard report.
func (s *EventService) InvalidateDashboard(ctx context.Context, familyID int) {
	if err := s.rdb.Del(ctx, config.CacheKey.DashboardKey(familyID)).Err(); err != nil {
		s.log.Warn().Err(err).Int("family_id", familyID).Msg("Invalidate dashboard failed")
	}
}
