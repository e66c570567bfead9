package service

import (
	"context"
	"encoding/json"
	"time"

	"ventario/internal/dto"
	"ventario/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	statsCacheKey = "stats:resumen"
	statsCacheTTL = 30 * time.Second
)

// StatsService computes the aggregate dashboard counters. Results are cached
// in Redis briefly — the dashboard polls this endpoint.
type StatsService interface {
	Resumen(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
	rdb          *redis.Client
}

// NewStatsService builds the stats service. rdb may be nil (unit test mode);
// caching is then skipped entirely.
func NewStatsService(productoRepo repository.ProductoRepository, ventaRepo repository.VentaRepository, rdb *redis.Client) StatsService {
	return &statsService{productoRepo: productoRepo, ventaRepo: ventaRepo, rdb: rdb}
}

func (s *statsService) Resumen(ctx context.Context) (*dto.StatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var resp dto.StatsResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	totalProductos, err := s.productoRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	totalVentas, err := s.ventaRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	sinStock, err := s.productoRepo.CountSinStock(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{
		TotalProductos:    totalProductos,
		TotalVentas:       totalVentas,
		ProductosSinStock: sinStock,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}
	return resp, nil
}
