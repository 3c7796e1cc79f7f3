package service

import (
	"context"
	"time"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/repository"
)

type costConfigService struct {
	costs repository.CostConfigRepo
}

func NewCostConfigService(costs repository.CostConfigRepo) CostConfigService {
	return &costConfigService{costs: costs}
}

func (s *costConfigService) Costs(ctx context.Context) (map[domain.Size]float64, error) {
	return s.costs.Costs(ctx)
}

func (s *costConfigService) SetCost(ctx context.Context, size domain.Size, cost float64) error {
	if !size.Valid() {
		return &ValidationError{Code: ErrCodeInvalidSize, Message: "unknown size " + string(size)}
	}
	if cost < 0 {
		return &ValidationError{Code: ErrCodeNegativeCost, Message: "cost must not be negative"}
	}
	return s.costs.SetCost(ctx, size, cost)
}

type holidayService struct {
	holidays repository.HolidayRepo
}

func NewHolidayService(holidays repository.HolidayRepo) HolidayService {
	return &holidayService{holidays: holidays}
}

func (s *holidayService) List(ctx context.Context) ([]domain.Holiday, error) {
	return s.holidays.List(ctx)
}

func (s *holidayService) Add(ctx context.Context, h domain.Holiday) error {
	name, err := normalizedName(h.Name)
	if err != nil {
		return err
	}
	h.Name = name
	if h.Day.IsZero() {
		return &ValidationError{Code: ErrCodeInvalidDate, Message: "holiday day is required"}
	}
	return s.holidays.Add(ctx, h)
}

func (s *holidayService) Remove(ctx context.Context, day time.Time) error {
	return s.holidays.Remove(ctx, day)
}
