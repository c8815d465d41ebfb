package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type ReportService struct {
	logs repository.WorkoutLogsRepositoryI
}

func NewReportService(logsRepo repository.WorkoutLogsRepositoryI) *ReportService {
	return &ReportService{
		logs: logsRepo,
	}
}

func (rs *ReportService) Summary(ctx context.Context, uid uuid.UUID, req *DateRangeRequest) (*entity.WorkoutSummary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	logs, err := rs.logs.GetByUserID(ctx, uid, req.toRange())
	if err != nil {
		return nil, repoError("workout logs", err)
	}
	return Summarize(logs), nil
}

// Summarize aggregates logs. Distributions count exercise entries, not workouts.
func Summarize(logs []*entity.WorkoutLog) *entity.WorkoutSummary {
	summary := &entity.WorkoutSummary{
		TotalWorkouts:           len(logs),
		MuscleGroupDistribution: map[string]int{},
		CategoryDistribution:    map[string]int{},
	}
	for _, log := range logs {
		if log.Duration != nil {
			summary.TotalDuration += *log.Duration
		}
		for _, el := range log.ExerciseLogs {
			if el.Exercise == nil {
				continue
			}
			summary.MuscleGroupDistribution[string(el.Exercise.MuscleGroup)]++
			summary.CategoryDistribution[string(el.Exercise.Category)]++
		}
	}
	if summary.TotalWorkouts > 0 {
		summary.AverageDuration = int(math.Round(float64(summary.TotalDuration) / float64(summary.TotalWorkouts)))
	}
	return summary
}
