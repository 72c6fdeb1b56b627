package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/adnanhb/MarqueeBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Catalog is the read-only view the validation and pricing code works
// against.
type Catalog interface {
	HallByID(id int) (*domain.Hall, error)
	MenuItemByID(id int) (*domain.MenuItem, error)
}

// CatalogService caches the venue's active halls and available menu items.
// The fetch is single-flight: concurrent Ensure calls share one request. A
// failed fetch leaves the cache empty and degraded; the next Ensure retries.
type CatalogService struct {
	api ports.VenueAPI
	log logger.Logger

	mu       sync.Mutex
	inflight chan struct{}
	loaded   bool
	degraded bool
	halls    map[int]domain.Hall
	hallList []domain.Hall
	items    map[int]domain.MenuItem
	itemList []domain.MenuItem
}

func NewCatalogService(api ports.VenueAPI, log logger.Logger) *CatalogService {
	return &CatalogService{
		api:   api,
		log:   log,
		halls: make(map[int]domain.Hall),
		items: make(map[int]domain.MenuItem),
	}
}

// Ensure loads the catalog if it has not been loaded yet. It never brings the
// workflow down: on failure it returns ErrCatalogUnavailable and the cache
// stays empty but usable.
func (s *CatalogService) Ensure(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	if s.inflight != nil {
		ch := s.inflight
		s.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.loaded {
			return domain.ErrCatalogUnavailable
		}
		return nil
	}

	ch := make(chan struct{})
	s.inflight = ch
	s.mu.Unlock()

	halls, hallsErr := s.api.FetchHalls(ctx)
	items, itemsErr := s.api.FetchMenuItems(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight = nil
	close(ch)

	if hallsErr != nil || itemsErr != nil {
		s.degraded = true
		err := hallsErr
		if err == nil {
			err = itemsErr
		}
		s.log.Warn("catalog fetch failed, continuing degraded",
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	s.hallList = s.hallList[:0]
	s.halls = make(map[int]domain.Hall, len(halls))
	for _, h := range halls {
		if !h.IsActive {
			continue
		}
		s.halls[h.ID] = h
		s.hallList = append(s.hallList, h)
	}

	s.itemList = s.itemList[:0]
	s.items = make(map[int]domain.MenuItem, len(items))
	for _, it := range items {
		if !it.IsAvailable {
			continue
		}
		s.items[it.ID] = it
		s.itemList = append(s.itemList, it)
	}

	s.loaded = true
	s.degraded = false

	s.log.Info("catalog loaded",
		logger.Int("halls", len(s.hallList)),
		logger.Int("menu_items", len(s.itemList)),
	)

	return nil
}

func (s *CatalogService) Halls(ctx context.Context) ([]domain.Hall, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Hall, len(s.hallList))
	copy(out, s.hallList)
	return out, nil
}

func (s *CatalogService) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MenuItem, len(s.itemList))
	copy(out, s.itemList)
	return out, nil
}

func (s *CatalogService) HallByID(id int) (*domain.Hall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.halls[id]
	if !ok {
		return nil, domain.ErrHallNotFound
	}
	return &h, nil
}

func (s *CatalogService) MenuItemByID(id int) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	return &it, nil
}

func (s *CatalogService) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}
