package service

import (
	"context"

	"github.com/dkrasnov/storefront/internal/repo"
	"github.com/dkrasnov/storefront/internal/transport"
)

const DefaultTopSellersLimit = 5

type ReportService struct {
	Repo *repo.GormRepo
}

func (s *ReportService) TopSellers(ctx context.Context, limit int) ([]transport.TopSeller, error) {
	if limit <= 0 {
		limit = DefaultTopSellersLimit
	}

	rows, err := s.Repo.TopSellers(ctx, limit)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Price = Round2(rows[i].Price)
		rows[i].TotalRevenue = Round2(rows[i].TotalRevenue)
	}
	return rows, nil
}

func (s *ReportService) SalesSummary(ctx context.Context) (*transport.SalesSummary, error) {
	row, err := s.Repo.SalesSummary(ctx)
	if err != nil {
		return nil, err
	}

	row.TotalRevenue = Round2(row.TotalRevenue)
	row.AverageOrderValue = Round2(row.AverageOrderValue)
	return row, nil
}

func (s *ReportService) ProductPerformance(ctx context.Context) ([]transport.ProductPerformance, error) {
	rows, err := s.Repo.ProductPerformance(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Price = Round2(rows[i].Price)
		rows[i].Revenue = Round2(rows[i].Revenue)
	}
	return rows, nil
}
