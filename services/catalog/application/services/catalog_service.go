package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/logger"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/wardrobe/services/catalog/domain/services"
)

const instrumentationName = "github.com/ghuser/wardrobe/services/catalog"

// Options selects between behaviour-parity and hardened catalog semantics.
type Options struct {
	// StrictPrices rejects non-numeric price text with ErrInvalidPrice.
	StrictPrices bool
	// StrictDelete makes DeleteItem return ErrItemNotFound for unknown IDs
	// instead of silently doing nothing.
	StrictDelete bool
	// SortScope is config.SortScopeView or config.SortScopeCatalog.
	SortScope string
}

// OptionsFromConfig reads the catalog options out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		StrictPrices: cfg.CatalogStrictPrices,
		StrictDelete: cfg.CatalogStrictDelete,
		SortScope:    cfg.CatalogSortScope,
	}
}

// CatalogService owns the catalog and the single view shown to the user.
//
// View rules:
//   - FilterByCategory recomputes the view from the full catalog and drops any sort.
//   - Sort applies to the last computed view (SortScopeView) or to the full
//     catalog, dropping any filter (SortScopeCatalog).
//   - AddItem, UpdateItem and DeleteItem reset the view to the full catalog.
//
// All methods are safe for concurrent use. Every method that reads or writes the
// catalog on behalf of the view holds mu for the whole operation, so a view is
// never built from a catalog that a concurrent mutation has already changed.
type CatalogService struct {
	repo repositories.ItemRepository
	opts Options
	log  logger.Logger

	tracer      trace.Tracer
	itemsAdded  metric.Int64Counter
	itemsGone   metric.Int64Counter
	viewQueries metric.Int64Counter

	mu sync.Mutex
	// view is nil while the user sees the full catalog in insertion order.
	view *models.View
}

// NewCatalogService returns a CatalogService over repo.
func NewCatalogService(repo repositories.ItemRepository, opts Options, log logger.Logger) *CatalogService {
	meter := otel.Meter(instrumentationName)
	s := &CatalogService{
		repo:   repo,
		opts:   opts,
		log:    log,
		tracer: otel.Tracer(instrumentationName),
	}
	var err error
	if s.itemsAdded, err = meter.Int64Counter("catalog.items.added",
		metric.WithDescription("Items added to the catalog")); err != nil {
		log.Warn("create catalog.items.added counter", "error", err)
	}
	if s.itemsGone, err = meter.Int64Counter("catalog.items.deleted",
		metric.WithDescription("Items deleted from the catalog")); err != nil {
		log.Warn("create catalog.items.deleted counter", "error", err)
	}
	if s.viewQueries, err = meter.Int64Counter("catalog.view.queries",
		metric.WithDescription("Filter and sort operations applied to the view")); err != nil {
		log.Warn("create catalog.view.queries counter", "error", err)
	}
	return s
}

// AddItem creates an Item from the raw form fields and appends it to the catalog.
// Only the price is checked, and only when StrictPrices is set.
func (s *CatalogService) AddItem(ctx context.Context, name, category, priceText, description string) (*models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.AddItem")
	defer span.End()

	price, err := s.price(priceText)
	if err != nil {
		return nil, s.fail(span, err)
	}

	item := models.NewItem(name, category, price, description)
	if err := domainsvcs.ValidateItemForCreation(item, s.opts.StrictPrices); err != nil {
		return nil, s.fail(span, fmt.Errorf("validate item: %w", err))
	}

	s.mu.Lock()
	err = s.repo.Save(ctx, item)
	if err == nil {
		s.view = nil
	}
	s.mu.Unlock()
	if err != nil {
		return nil, s.fail(span, fmt.Errorf("save item: %w", err))
	}

	add(ctx, s.itemsAdded)
	span.SetAttributes(attribute.String("item.id", item.ID.String()))
	s.log.InfoContext(ctx, "catalog item added", "item_id", item.ID, "category", item.Category)
	return item, nil
}

// UpdateItem replaces every editable field of an existing Item. The ID never changes.
func (s *CatalogService) UpdateItem(ctx context.Context, id models.ItemID, name, category, priceText, description string) (*models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.UpdateItem", trace.WithAttributes(attribute.String("item.id", id.String())))
	defer span.End()

	price, err := s.price(priceText)
	if err != nil {
		return nil, s.fail(span, err)
	}

	s.mu.Lock()
	item, err := s.replaceItem(ctx, id, name, category, price, description)
	if err == nil {
		s.view = nil
	}
	s.mu.Unlock()
	if err != nil {
		return nil, s.fail(span, err)
	}

	s.log.InfoContext(ctx, "catalog item updated", "item_id", item.ID)
	return item, nil
}

// DeleteItem removes the Item with the given ID. An unknown ID is a no-op unless
// StrictDelete is set, in which case ErrItemNotFound is returned.
func (s *CatalogService) DeleteItem(ctx context.Context, id models.ItemID) error {
	ctx, span := s.tracer.Start(ctx, "catalog.DeleteItem", trace.WithAttributes(attribute.String("item.id", id.String())))
	defer span.End()

	s.mu.Lock()
	err := s.repo.Delete(ctx, id)
	if err == nil {
		s.view = nil
	}
	s.mu.Unlock()

	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound) && !s.opts.StrictDelete:
		s.log.DebugContext(ctx, "delete of unknown catalog item ignored", "item_id", id)
		return nil
	case err != nil:
		return s.fail(span, fmt.Errorf("delete item: %w", err))
	}

	add(ctx, s.itemsGone)
	s.log.InfoContext(ctx, "catalog item deleted", "item_id", id)
	return nil
}

// GetItem returns the Item with the given ID, for the detail screen.
func (s *CatalogService) GetItem(ctx context.Context, id models.ItemID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Items returns the full catalog in insertion order.
func (s *CatalogService) Items(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// View returns the view the user currently sees.
func (s *CatalogService) View(ctx context.Context) (models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView(ctx)
}

// FilterByCategory replaces the view with the catalog items whose category
// equals category ignoring case. An empty category shows the full catalog.
// Any active sort is dropped.
func (s *CatalogService) FilterByCategory(ctx context.Context, category string) ([]models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.FilterByCategory", trace.WithAttributes(attribute.String("category", category)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.Items(ctx)
	if err != nil {
		return nil, s.fail(span, err)
	}
	s.view = &models.View{
		Items:    domainsvcs.FilterByCategory(all, category),
		Category: category,
		Sort:     models.SortNone,
	}
	add(ctx, s.viewQueries, attribute.String("op", "filter"))
	return cloneItems(s.view.Items), nil
}

// SortByPriceAscending orders the view by price, lowest first.
func (s *CatalogService) SortByPriceAscending(ctx context.Context) ([]models.Item, error) {
	return s.Sort(ctx, models.SortAscending)
}

// SortByPriceDescending orders the view by price, highest first.
func (s *CatalogService) SortByPriceDescending(ctx context.Context) ([]models.Item, error) {
	return s.Sort(ctx, models.SortDescending)
}

// Sort orders the view by price in direction dir. See CatalogService for which
// sequence gets sorted.
func (s *CatalogService) Sort(ctx context.Context, dir models.SortDirection) ([]models.Item, error) {
	v, err := s.SortView(ctx, dir)
	if err != nil {
		return nil, err
	}
	return v.Items, nil
}

// SortView is Sort returning the whole view it installed, category included.
func (s *CatalogService) SortView(ctx context.Context, dir models.SortDirection) (models.View, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Sort", trace.WithAttributes(attribute.String("direction", dir.String())))
	defer span.End()

	if dir != models.SortAscending && dir != models.SortDescending {
		return models.View{}, s.fail(span, fmt.Errorf("%w: %q", catalogdomain.ErrInvalidSortDirection, dir))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var base models.View
	if s.opts.SortScope == config.SortScopeCatalog {
		all, err := s.Items(ctx)
		if err != nil {
			return models.View{}, s.fail(span, err)
		}
		base = models.View{Items: all}
	} else {
		v, err := s.currentView(ctx)
		if err != nil {
			return models.View{}, s.fail(span, err)
		}
		base = v
	}

	s.view = &models.View{
		Items:    domainsvcs.SortByPrice(base.Items, dir),
		Category: base.Category,
		Sort:     dir,
	}
	add(ctx, s.viewQueries, attribute.String("op", "sort"))
	v := *s.view
	v.Items = cloneItems(v.Items)
	return v, nil
}

// ResetView shows the full catalog again, dropping filter and sort, and returns
// the view it left in place.
func (s *CatalogService) ResetView(ctx context.Context) (models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = nil
	s.log.DebugContext(ctx, "catalog view reset")
	return s.currentView(ctx)
}

// Ping reports whether the underlying repository is reachable.
func (s *CatalogService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("catalog ping: %w", err)
	}
	return nil
}

// currentView must be called with s.mu held.
func (s *CatalogService) currentView(ctx context.Context) (models.View, error) {
	if s.view == nil {
		all, err := s.Items(ctx)
		if err != nil {
			return models.View{}, err
		}
		return models.View{Items: all}, nil
	}
	v := *s.view
	v.Items = cloneItems(v.Items)
	return v, nil
}

// replaceItem must be called with s.mu held.
func (s *CatalogService) replaceItem(ctx context.Context, id models.ItemID, name, category string, price models.Price, description string) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	item.Name = name
	item.Category = category
	item.Price = price
	item.Description = description
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (s *CatalogService) price(text string) (models.Price, error) {
	if !s.opts.StrictPrices {
		return models.RawPrice(text), nil
	}
	p, err := models.ParsePrice(text)
	if err != nil {
		return models.Price{}, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPrice, err)
	}
	return p, nil
}

func (s *CatalogService) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func add(ctx context.Context, c metric.Int64Counter, attrs ...attribute.KeyValue) {
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func cloneItems(items []models.Item) []models.Item {
	if items == nil {
		return []models.Item{}
	}
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}
