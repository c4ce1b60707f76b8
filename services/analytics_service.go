package services

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/satoshi256kbyte/goal-mandala-sub000/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return dayStart(t).Add(24*time.Hour - time.Nanosecond)
}

// ---------- Summary ----------

type GoalSnapshot struct {
	ID       uint              `json:"id"`
	Title    string            `json:"title"`
	Status   models.GoalStatus `json:"status"`
	Progress int               `json:"progress"`
}

type AnalyticsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	// Completed and EstimatedMin are restricted to the requested range.
	// Total is the user's whole task list regardless of range, so
	// CompletionPct reads as "share of all tasks closed in this period".
	Tasks struct {
		Completed     int64   `json:"completed"`
		Total         int64   `json:"total"`
		CompletionPct float64 `json:"completion_pct"`
		EstimatedMin  int64   `json:"estimated_minutes_completed"`
	} `json:"tasks"`

	Goals []GoalSnapshot `json:"goals"`

	Reflections struct {
		Count     int64   `json:"count"`
		AvgRating float64 `json:"avg_rating,omitempty"`
	} `json:"reflections"`
}

func (s *AnalyticsService) Summary(
	ctx context.Context, userID uint, from, to time.Time,
) (*AnalyticsSummary, error) {
	if to.Before(from) {
		return nil, errors.New("`to` must be on/after `from`")
	}

	out := &AnalyticsSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")

	userTasks := s.db.WithContext(ctx).Model(&models.Task{}).
		Joins("JOIN actions ON actions.id = tasks.action_id").
		Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Where("goals.user_id = ?", userID)

	if err := userTasks.Session(&gorm.Session{}).Count(&out.Tasks.Total).Error; err != nil {
		return nil, err
	}
	if err := userTasks.Session(&gorm.Session{}).
		Where("tasks.status = ? AND tasks.completed_at BETWEEN ? AND ?",
			models.TaskCompleted, dayStart(from), dayEnd(to)).
		Count(&out.Tasks.Completed).Error; err != nil {
		return nil, err
	}
	if out.Tasks.Total > 0 {
		pct := float64(out.Tasks.Completed) / float64(out.Tasks.Total) * 100
		out.Tasks.CompletionPct = math.Round(pct*100) / 100
	}

	var estMin int64
	if err := userTasks.Session(&gorm.Session{}).
		Where("tasks.status = ? AND tasks.completed_at BETWEEN ? AND ?",
			models.TaskCompleted, dayStart(from), dayEnd(to)).
		Select("COALESCE(SUM(tasks.estimated_time), 0)").
		Scan(&estMin).Error; err != nil {
		return nil, err
	}
	out.Tasks.EstimatedMin = estMin

	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	for _, g := range goals {
		out.Goals = append(out.Goals, GoalSnapshot{
			ID: g.ID, Title: g.Title, Status: g.Status, Progress: g.Progress,
		})
	}

	refs := s.db.WithContext(ctx).Model(&models.Reflection{}).
		Joins("JOIN tasks ON tasks.id = reflections.task_id").
		Joins("JOIN actions ON actions.id = tasks.action_id").
		Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Where("goals.user_id = ? AND reflections.created_at BETWEEN ? AND ?",
			userID, dayStart(from), dayEnd(to))

	if err := refs.Session(&gorm.Session{}).Count(&out.Reflections.Count).Error; err != nil {
		return nil, err
	}
	var avg sql.NullFloat64
	if err := refs.Session(&gorm.Session{}).
		Where("reflections.rating IS NOT NULL").
		Select("AVG(reflections.rating)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg.Valid {
		out.Reflections.AvgRating = math.Round(avg.Float64*100) / 100
	}

	return out, nil
}

// ---------- Weekly overview ----------

type WeeklyDay struct {
	Date      string `json:"date"`
	Completed int64  `json:"completed"`
}

type WeeklyOverview struct {
	WeekStart string      `json:"week_start"`
	Days      []WeeklyDay `json:"days"`
	Total     int64       `json:"total"`
}

// WeeklyOverview counts completed tasks per day for the seven days
// starting at weekStart (callers normalize to Monday).
func (s *AnalyticsService) WeeklyOverview(
	ctx context.Context, userID uint, weekStart time.Time,
) (*WeeklyOverview, error) {
	start := dayStart(weekStart)
	out := &WeeklyOverview{WeekStart: start.Format("2006-01-02")}

	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		var n int64
		err := s.db.WithContext(ctx).Model(&models.Task{}).
			Joins("JOIN actions ON actions.id = tasks.action_id").
			Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
			Joins("JOIN goals ON goals.id = sub_goals.goal_id").
			Where("goals.user_id = ? AND tasks.status = ? AND tasks.completed_at BETWEEN ? AND ?",
				userID, models.TaskCompleted, d, dayEnd(d)).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		out.Days = append(out.Days, WeeklyDay{Date: d.Format("2006-01-02"), Completed: n})
		out.Total += n
	}

	return out, nil
}
