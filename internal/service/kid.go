package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
	"jumpingkids/internal/validate"
)

// Stats period windows, in days.
const (
	periodWeekDays  = 7
	periodMonthDays = 30
	periodYearDays  = 365
)

// KidService covers the kid profiles of a tutor. Every operation is
// scoped to the owning user; a kid belonging to someone else behaves as
// if it did not exist.
type KidService interface {
	// List returns the active kids of a user, oldest first.
	List(ctx context.Context, userID int64) ([]model.Kid, error)

	// Get returns one kid by id.
	Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Kid, error)

	// Create registers a kid profile with default preferences and zeroed
	// stats unless preferences are provided.
	Create(ctx context.Context, in model.KidCreate, userID int64) (*model.Kid, error)

	// Update applies a partial update. Nil fields are left untouched; a
	// non-nil Preferences replaces the whole preferences blob.
	Update(ctx context.Context, id uuid.UUID, in model.KidUpdate, userID int64) (*model.Kid, error)

	// Delete deactivates a kid. History stays in place.
	Delete(ctx context.Context, id uuid.UUID, userID int64) error

	// Stats returns the kid's aggregate stats plus per-day activity for
	// the requested period (week, month or year; week is the default).
	// The week period zero-fills the trailing seven days; longer periods
	// return only days with recorded activity.
	Stats(ctx context.Context, id uuid.UUID, userID int64, period string) (*model.KidStatsResponse, error)
}

type kidService struct {
	kids repository.KidRepository
}

// NewKidService constructs a KidService.
func NewKidService(kids repository.KidRepository) KidService {
	return &kidService{kids: kids}
}

func (s *kidService) List(ctx context.Context, userID int64) ([]model.Kid, error) {
	return s.kids.ListByUser(ctx, userID)
}

func (s *kidService) Get(ctx context.Context, id uuid.UUID, userID int64) (*model.Kid, error) {
	kid, err := s.kids.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKidNotFound
		}
		return nil, err
	}
	return kid, nil
}

func (s *kidService) Create(ctx context.Context, in model.KidCreate, userID int64) (*model.Kid, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	prefs := model.DefaultKidPreferences()
	if in.Preferences != nil {
		prefs = *in.Preferences
		if prefs.FavoriteExercises == nil {
			prefs.FavoriteExercises = []string{}
		}
	}

	return s.kids.Create(ctx, &model.Kid{
		UserID:      userID,
		Name:        in.Name,
		Age:         in.Age,
		Avatar:      in.Avatar,
		BirthDate:   in.BirthDate,
		Preferences: prefs,
		Stats:       model.KidStats{},
	})
}

func (s *kidService) Update(ctx context.Context, id uuid.UUID, in model.KidUpdate, userID int64) (*model.Kid, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	kid, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		kid.Name = *in.Name
	}
	if in.Age != nil {
		kid.Age = *in.Age
	}
	if in.Avatar != nil {
		kid.Avatar = *in.Avatar
	}
	if in.BirthDate != nil {
		kid.BirthDate = *in.BirthDate
	}
	if in.Preferences != nil {
		kid.Preferences = *in.Preferences
		if kid.Preferences.FavoriteExercises == nil {
			kid.Preferences.FavoriteExercises = []string{}
		}
	}

	updated, err := s.kids.Update(ctx, kid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKidNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *kidService) Delete(ctx context.Context, id uuid.UUID, userID int64) error {
	ok, err := s.kids.Deactivate(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrKidNotFound
	}
	return nil
}

func (s *kidService) Stats(ctx context.Context, id uuid.UUID, userID int64, period string) (*model.KidStatsResponse, error) {
	days, err := periodDays(period)
	if err != nil {
		return nil, err
	}

	kid, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	today := model.Today()
	from := today.AddDays(-(days - 1))
	activity, err := s.kids.DailyActivity(ctx, id, from, today)
	if err != nil {
		return nil, err
	}

	if days == periodWeekDays {
		activity = fillWeek(activity, from)
	}

	return &model.KidStatsResponse{
		KidStats:       kid.Stats,
		WeeklyProgress: activity,
	}, nil
}

func periodDays(period string) (int, error) {
	switch period {
	case "", "week":
		return periodWeekDays, nil
	case "month":
		return periodMonthDays, nil
	case "year":
		return periodYearDays, nil
	}
	return 0, ErrInvalidPeriod
}

// fillWeek expands sparse per-day activity into seven consecutive entries
// starting at from, oldest first.
func fillWeek(activity []model.WeeklyProgress, from model.Date) []model.WeeklyProgress {
	byDate := make(map[string]model.WeeklyProgress, len(activity))
	for _, day := range activity {
		byDate[day.Date] = day
	}

	week := make([]model.WeeklyProgress, 0, periodWeekDays)
	for i := 0; i < periodWeekDays; i++ {
		date := from.AddDays(i).String()
		day, ok := byDate[date]
		if !ok {
			day = model.WeeklyProgress{Date: date}
		}
		week = append(week, day)
	}
	return week
}
