package order

import (
	"context"
	"fmt"
	"time"

	"shopapi/pkg/logger"
	"shopapi/pkg/model"
)

// Service creates orders against the catalog and stores them in a Repository.
type Service struct {
	catalog Catalog
	repo    Repository
	log     *logger.Logger
	now     func() time.Time
}

// NewService wires a Service.
func NewService(c Catalog, repo Repository, log *logger.Logger) *Service {
	return &Service{catalog: c, repo: repo, log: log, now: time.Now}
}

// Create validates req, prices it from the current catalog and commits it.
// Nothing is persisted unless every reference resolves.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Order, error) {
	if err := req.Validate(); err != nil {
		return Order{}, err
	}

	if _, err := s.catalog.FindUser(ctx, req.UserID); err != nil {
		return Order{}, err
	}

	lines := make([]Line, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		p, err := s.catalog.FindProduct(ctx, it.ProductID)
		if err != nil {
			return Order{}, err
		}
		if !p.IsAvailable {
			return Order{}, fmt.Errorf("product %d: %w", p.ID, model.ErrUnavailable)
		}
		lines = append(lines, Line{ProductID: p.ID, Quantity: it.Quantity, UnitPrice: p.Price})
		total += p.Price * float64(it.Quantity)
	}

	o, err := s.repo.Create(ctx, Order{
		UserID:      req.UserID,
		Items:       lines,
		TotalAmount: total,
		Status:      StatusPending,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return Order{}, fmt.Errorf("persist order: %w", err)
	}

	s.log.Info(ctx, "order created", "order_id", o.ID, "user_id", o.UserID, "total", o.TotalAmount)
	return o, nil
}

// List returns every committed order.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// Info describes the order storage.
func (s *Service) Info(ctx context.Context) (Info, error) {
	return s.repo.Info(ctx)
}
