package services

import (
	"log"
	"time"

	"shop_manager/internal/redis"
	"shop_manager/internal/repository"
)

type PeriodSummary struct {
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
	Items  int     `json:"items"`
}

type DailyPoint struct {
	Date        string  `json:"date"`
	DailySales  float64 `json:"dailySales"`
	TotalOrders int     `json:"totalOrders"`
	TotalItems  int     `json:"totalItems"`
}

// FinancialSummary is the read-only rollup of persisted orders. Cancelled
// orders are excluded from sales figures but appear in the status counts.
type FinancialSummary struct {
	Daily           PeriodSummary                   `json:"daily"`
	Monthly         PeriodSummary                   `json:"monthly"`
	ChartData       []DailyPoint                    `json:"chartData"`
	ByStatus        []repository.StatusCount        `json:"byStatus"`
	ByPaymentMethod []repository.PaymentMethodCount `json:"byPaymentMethod"`
}

type ReportService interface {
	GetFinancialSummary() (*FinancialSummary, error)
	GetDailySummary(days int) ([]DailyPoint, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
	cache     *redis.Client
	cacheTTL  time.Duration
}

func NewReportService(orderRepo repository.OrderRepository, cache *redis.Client, cacheTTL time.Duration) ReportService {
	return &reportService{orderRepo: orderRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *reportService) GetFinancialSummary() (*FinancialSummary, error) {
	if s.cache != nil {
		var cached FinancialSummary
		if err := s.cache.GetSummary(redis.SummaryFinancialKey, &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	daily, err := s.summarizeRange(startOfDay(now), endOfDay(now))
	if err != nil {
		return nil, err
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)
	monthly, err := s.summarizeRange(startOfMonth, endOfMonth)
	if err != nil {
		return nil, err
	}

	chart, err := s.GetDailySummary(7)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	byPayment, err := s.orderRepo.CountByPaymentMethod()
	if err != nil {
		return nil, err
	}

	summary := &FinancialSummary{
		Daily:           daily,
		Monthly:         monthly,
		ChartData:       chart,
		ByStatus:        byStatus,
		ByPaymentMethod: byPayment,
	}

	if s.cache != nil {
		if err := s.cache.SetSummary(redis.SummaryFinancialKey, summary, s.cacheTTL); err != nil {
			log.Printf("failed to cache financial summary: %v", err)
		}
	}
	return summary, nil
}

// GetDailySummary returns one point per day for the last N days, today
// included. Days with no orders yield zero-valued points.
func (s *reportService) GetDailySummary(days int) ([]DailyPoint, error) {
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	points := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		summary, err := s.summarizeRange(startOfDay(day), endOfDay(day))
		if err != nil {
			return nil, err
		}
		points = append(points, DailyPoint{
			Date:        day.Format("2006-01-02"),
			DailySales:  summary.Sales,
			TotalOrders: summary.Orders,
			TotalItems:  summary.Items,
		})
	}
	return points, nil
}

func (s *reportService) summarizeRange(start, end time.Time) (PeriodSummary, error) {
	orders, err := s.orderRepo.GetByDateRange(start, end, true)
	if err != nil {
		return PeriodSummary{}, err
	}

	summary := PeriodSummary{Orders: len(orders)}
	for _, order := range orders {
		summary.Sales += order.GrandTotal
		summary.Items += order.Quantity
	}
	return summary, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
