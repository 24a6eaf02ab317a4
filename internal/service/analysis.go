package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wastewise/backend/internal/models"
	"github.com/wastewise/backend/internal/waste"
)

const analysisCacheTTL = 5 * time.Minute

// ItemAnalysis is the waste accounting for one entry of the requested date.
// Percentages are nil for entries still awaiting a remaining weight and for
// zero initial weights.
type ItemAnalysis struct {
	FoodItem        string   `json:"food_item"`
	InitialWeight   float64  `json:"initial_weight"`
	RemainingWeight *float64 `json:"remaining_weight"`
	WastePercentage *float64 `json:"waste_percentage"`
	ConsumptionRate *float64 `json:"consumption_rate"`
	Category        string   `json:"category,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// DateAnalysis is the full waste report for one owner and date.
type DateAnalysis struct {
	Date         string            `json:"date"`
	Items        []ItemAnalysis    `json:"items"`
	Distribution []waste.ItemWaste `json:"distribution"`
}

// AnalysisService computes waste reports per date and caches them in Redis.
// The cache is best effort: any Redis failure falls back to computing the
// report directly.
type AnalysisService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewAnalysisService(db *gorm.DB, redisClient *redis.Client) *AnalysisService {
	return &AnalysisService{db: db, redis: redisClient}
}

// Analyze returns the waste report for one of the caller's dates.
func (s *AnalysisService) Analyze(ctx context.Context, ownerID uuid.UUID, date string) (*DateAnalysis, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if cached := s.fromCache(ctx, ownerID, date); cached != nil {
		return cached, nil
	}

	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", ownerID, date).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load entries for analysis: %w", err)
	}

	report := &DateAnalysis{Date: date, Items: make([]ItemAnalysis, 0, len(entries))}
	weighed := make([]waste.Weighed, 0, len(entries))
	for _, e := range entries {
		item := ItemAnalysis{
			FoodItem:        e.FoodItem,
			InitialWeight:   e.InitialWeight,
			RemainingWeight: e.RemainingWeight,
		}
		if pct, ok := waste.Percentage(e.InitialWeight, e.RemainingWeight); ok {
			rate := 100 - pct
			item.WastePercentage = &pct
			item.ConsumptionRate = &rate
			item.Category = waste.Category(pct)
			item.Recommendations = waste.Recommendations(e.FoodItem, pct)
		}
		report.Items = append(report.Items, item)
		weighed = append(weighed, waste.Weighed{
			FoodItem:        e.FoodItem,
			InitialWeight:   e.InitialWeight,
			RemainingWeight: e.RemainingWeight,
		})
	}
	report.Distribution = waste.DailyDistribution(weighed)

	s.toCache(ctx, ownerID, date, report)
	return report, nil
}

// Invalidate drops the cached report for an owner and date. Called by the
// entry service after every mutation.
func (s *AnalysisService) Invalidate(ctx context.Context, ownerID uuid.UUID, date string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, analysisKey(ownerID, date)).Err(); err != nil {
		slog.Warn("failed to invalidate analysis cache", "date", date, "error", err)
	}
}

func analysisKey(ownerID uuid.UUID, date string) string {
	return fmt.Sprintf("analysis:%s:%s", ownerID, date)
}

func (s *AnalysisService) fromCache(ctx context.Context, ownerID uuid.UUID, date string) *DateAnalysis {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.Get(ctx, analysisKey(ownerID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("analysis cache read failed", "date", date, "error", err)
		}
		return nil
	}
	var report DateAnalysis
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil
	}
	return &report
}

func (s *AnalysisService) toCache(ctx context.Context, ownerID uuid.UUID, date string, report *DateAnalysis) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, analysisKey(ownerID, date), raw, analysisCacheTTL).Err(); err != nil {
		slog.Warn("analysis cache write failed", "date", date, "error", err)
	}
}
