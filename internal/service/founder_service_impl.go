package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gauntlet/internal/domain"
	"github.com/alexanderramin/gauntlet/internal/repository"
)

type founderService struct {
	founders repository.FounderRepo
}

// NewFounderService creates a FounderService over the given repository.
func NewFounderService(founders repository.FounderRepo) FounderService {
	return &founderService{founders: founders}
}

func (s *founderService) Create(ctx context.Context, id, goalText string) (*domain.Founder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("founder id is required")
	}
	if err := domain.ValidateGoal(goalText); err != nil {
		return nil, err
	}

	if _, err := s.founders.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("founder %s: %w", id, ErrFounderExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	f := &domain.Founder{
		ID:         id,
		CreatedAt:  time.Now().UTC(),
		GoalText:   strings.TrimSpace(goalText),
		Level:      1,
		XP:         0,
		Streak:     0,
		Debt:       0,
		Difficulty: 1,
	}
	if err := s.founders.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *founderService) Get(ctx context.Context, id string) (*domain.Founder, error) {
	return s.founders.GetByID(ctx, id)
}

func (s *founderService) UpdateGoal(ctx context.Context, id, goalText string) error {
	if err := domain.ValidateGoal(goalText); err != nil {
		return err
	}
	return s.founders.UpdateGoal(ctx, id, strings.TrimSpace(goalText))
}
