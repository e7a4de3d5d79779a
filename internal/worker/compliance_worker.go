package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/compliance"
	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ComplianceWorker consumes sync_compliance_queue and recounts a family's
// completed instructional days after attendance writes, persisting the
// reclassified standing.
type ComplianceWorker struct {
	attendanceRepo *repository.AttendanceRepository
	yearRepo       *repository.SchoolYearRepository
	complianceRepo *repository.ComplianceRepository
	rdb            *redis.Client
	log            zerolog.Logger
}

// NewComplianceWorker creates a new ComplianceWorker.
func NewComplianceWorker(
	attendanceRepo *repository.AttendanceRepository,
	yearRepo *repository.SchoolYearRepository,
	complianceRepo *repository.ComplianceRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *ComplianceWorker {
	return &ComplianceWorker{
		attendanceRepo: attendanceRepo,
		yearRepo:       yearRepo,
		complianceRepo: complianceRepo,
		rdb:            rdb,
		log:            log.With().Str("component", "compliance_worker").Logger(),
	}
}

type syncPayload struct {
	FamilyID     int `json:"family_id"`
	SchoolYearID int `json:"school_year_id"`
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *ComplianceWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ComplianceWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.SyncComplianceQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var payload syncPayload
	if err := json.Unmarshal([]byte(result[1]), &payload); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.sync(ctx, &payload); err != nil {
		w.log.Error().Err(err).
			Int("family_id", payload.FamilyID).
			Int("school_year_id", payload.SchoolYearID).
			Msg("Sync error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.SyncComplianceQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

func (w *ComplianceWorker) sync(ctx context.Context, p *syncPayload) error {
	year, err := w.yearRepo.GetByID(ctx, p.FamilyID, p.SchoolYearID)
	if err != nil {
		return err
	}

	completed, err := w.attendanceRepo.CountCompletedDays(ctx, p.FamilyID, p.SchoolYearID)
	if err != nil {
		return err
	}

	record := &model.ComplianceRecord{
		FamilyID:      p.FamilyID,
		SchoolYearID:  p.SchoolYearID,
		DaysCompleted: completed,
		DaysRequired:  year.DaysRequired,
		Status:        string(compliance.Classify(completed, year.DaysRequired)),
	}
	return w.complianceRepo.Upsert(ctx, record)
}

// drain processes all remaining items in the queue before shutdown.
func (w *ComplianceWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.SyncComplianceQueue).Result()
		if err != nil {
			break
		}

		var payload syncPayload
		if err := json.Unmarshal([]byte(result), &payload); err != nil {
			w.log.Error().Err(err).Msg("Drain unmarshal error")
			continue
		}

		if err := w.sync(ctx, &payload); err != nil {
			w.log.Error().Err(err).Msg("Drain sync error")
			w.rdb.RPush(ctx, config.WorkerKey.SyncComplianceQueue, result)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
