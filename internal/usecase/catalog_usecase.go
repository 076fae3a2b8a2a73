package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/domain/pricing"
	"espaco_vista/internal/infrastructure/logger"
	"espaco_vista/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrPriceTableNotFound  = errors.New("price table not found")
	ErrMenuNotFound        = errors.New("menu not found")
	ErrPriceNotFound       = errors.New("service price not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidPriceTableID = errors.New("invalid price table id")
	ErrInvalidMenuID       = errors.New("invalid menu id")
	ErrInvalidCatalogInput = errors.New("invalid catalog input")
	ErrInvalidPrice        = errors.New("invalid price")
)

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks

// ICatalogUseCase manages the services, price tables, prices and menus that
// quotes are priced against.
//
// Every write invalidates the cached pricing snapshot.
type ICatalogUseCase interface {
	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListServices(ctx context.Context, category string) ([]entities.Service, error)
	UpdateService(ctx context.Context, id string, s entities.Service) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	CreatePriceTable(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error)
	GetPriceTable(ctx context.Context, id string) (entities.PriceTable, error)
	ListPriceTables(ctx context.Context) ([]entities.PriceTable, error)
	UpdatePriceTable(ctx context.Context, id string, t entities.PriceTable) (entities.PriceTable, error)
	DeletePriceTable(ctx context.Context, id string) error

	SetServicePrice(ctx context.Context, priceTableID, serviceID string, price float64) (entities.ServicePrice, error)
	DeleteServicePrice(ctx context.Context, priceTableID, serviceID string) error
	ListServicePrices(ctx context.Context, priceTableID string) ([]entities.ServicePrice, error)

	CreateMenu(ctx context.Context, menu entities.Menu) (entities.Menu, error)
	GetMenu(ctx context.Context, id string) (entities.Menu, error)
	ListMenus(ctx context.Context) ([]entities.Menu, error)
	UpdateMenu(ctx context.Context, id string, menu entities.Menu) (entities.Menu, error)
	DeleteMenu(ctx context.Context, id string) error

	Snapshot(ctx context.Context) (pricing.Catalog, error)
}

type CatalogUseCase struct {
	services interfaces.IServiceRepository
	tables   interfaces.IPriceTableRepository
	menus    interfaces.IMenuRepository
	cache    interfaces.ICatalogCache
	validate *validator.Validate
	log      zerolog.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)
var _ interfaces.ICatalogReader = (*CatalogUseCase)(nil)

// NewCatalogUseCase wires the catalog repositories. cache may be nil, in
// which case every snapshot is read from the repositories.
func NewCatalogUseCase(
	services interfaces.IServiceRepository,
	tables interfaces.IPriceTableRepository,
	menus interfaces.IMenuRepository,
	cache interfaces.ICatalogCache,
	log zerolog.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		services: services,
		tables:   tables,
		menus:    menus,
		cache:    cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logger.Component(log, "catalog.usecase"),
	}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s = normalizeService(s)
	if err := u.validate.Struct(s); err != nil {
		return entities.Service{}, fmt.Errorf("%w: %v", ErrInvalidCatalogInput, err)
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.services.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	u.invalidate(ctx)
	return created, nil
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// ListServices returns all services, or only those of category when it is set.
func (u *CatalogUseCase) ListServices(ctx context.Context, category string) ([]entities.Service, error) {
	all, err := u.services.List(ctx)
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return all, nil
	}
	out := make([]entities.Service, 0, len(all))
	for _, s := range all {
		if string(s.Category) == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, s entities.Service) (entities.Service, error) {
	current, err := u.GetService(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	s = normalizeService(s)
	if err := u.validate.Struct(s); err != nil {
		return entities.Service{}, fmt.Errorf("%w: %v", ErrInvalidCatalogInput, err)
	}

	s.ID = current.ID
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.services.Update(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	u.invalidate(ctx)
	return updated, nil
}

// DeleteService removes a service. Quote items that reference it become
// orphaned and stop contributing to totals.
func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	found, err := u.services.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrServiceNotFound
	}
	u.invalidate(ctx)
	return nil
}

func (u *CatalogUseCase) CreatePriceTable(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := u.validate.Struct(t); err != nil {
		return entities.PriceTable{}, fmt.Errorf("%w: %v", ErrInvalidCatalogInput, err)
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := u.tables.Create(ctx, t)
	if err != nil {
		return entities.PriceTable{}, err
	}
	u.invalidate(ctx)
	return created, nil
}

func (u *CatalogUseCase) GetPriceTable(ctx context.Context, id string) (entities.PriceTable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PriceTable{}, ErrInvalidPriceTableID
	}
	t, err := u.tables.GetByID(ctx, id)
	if err != nil {
		return entities.PriceTable{}, err
	}
	if t.ID == "" {
		return entities.PriceTable{}, ErrPriceTableNotFound
	}
	return t, nil
}

func (u *CatalogUseCase) ListPriceTables(ctx context.Context) ([]entities.PriceTable, error) {
	return u.tables.List(ctx)
}

func (u *CatalogUseCase) UpdatePriceTable(ctx context.Context, id string, t entities.PriceTable) (entities.PriceTable, error) {
	current, err := u.GetPriceTable(ctx, id)
	if err != nil {
		return entities.PriceTable{}, err
	}
	t.Name = strings.TrimSpace(t.Name)
	if err := u.validate.Struct(t); err != nil {
		return entities.PriceTable{}, fmt.Errorf("%w: %v", ErrInvalidCatalogInput, err)
	}

	t.ID = current.ID
	t.CreatedAt = current.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	updated, err := u.tables.Update(ctx, t)
	if err != nil {
		return entities.PriceTable{}, err
	}
	if updated.ID == "" {
		return entities.PriceTable{}, ErrPriceTableNotFound
	}
	u.invalidate(ctx)
	return updated, nil
}

// DeletePriceTable removes the table and every price recorded under it.
// Quotes still pointing at it compute with zero prices and credit.
func (u *CatalogUseCase) DeletePriceTable(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPriceTableID
	}

	prices, err := u.tables.ListPricesByTable(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range prices {
		if _, err := u.tables.DeletePrice(ctx, p.ServiceID, id); err != nil {
			return err
		}
	}

	found, err := u.tables.Delete(ctx, id)
	if err != nil {
		return err
	}
	u.invalidate(ctx)
	if !found {
		return ErrPriceTableNotFound
	}
	return nil
}

// SetServicePrice creates or replaces the price of serviceID in priceTableID.
func (u *CatalogUseCase) SetServicePrice(ctx context.Context, priceTableID, serviceID string, price float64) (entities.ServicePrice, error) {
	if price < 0 {
		return entities.ServicePrice{}, ErrInvalidPrice
	}
	table, err := u.GetPriceTable(ctx, priceTableID)
	if err != nil {
		return entities.ServicePrice{}, err
	}
	svc, err := u.GetService(ctx, serviceID)
	if err != nil {
		return entities.ServicePrice{}, err
	}

	p := entities.ServicePrice{ServiceID: svc.ID, PriceTableID: table.ID, Price: price}
	if err := u.tables.UpsertPrice(ctx, p); err != nil {
		return entities.ServicePrice{}, err
	}
	u.invalidate(ctx)
	return p, nil
}

func (u *CatalogUseCase) DeleteServicePrice(ctx context.Context, priceTableID, serviceID string) error {
	priceTableID = strings.TrimSpace(priceTableID)
	serviceID = strings.TrimSpace(serviceID)
	if priceTableID == "" {
		return ErrInvalidPriceTableID
	}
	if serviceID == "" {
		return ErrInvalidServiceID
	}

	found, err := u.tables.DeletePrice(ctx, serviceID, priceTableID)
	if err != nil {
		return err
	}
	if !found {
		return ErrPriceNotFound
	}
	u.invalidate(ctx)
	return nil
}

func (u *CatalogUseCase) ListServicePrices(ctx context.Context, priceTableID string) ([]entities.ServicePrice, error) {
	t, err := u.GetPriceTable(ctx, priceTableID)
	if err != nil {
		return nil, err
	}
	return u.tables.ListPricesByTable(ctx, t.ID)
}

func (u *CatalogUseCase) CreateMenu(ctx context.Context, m entities.Menu) (entities.Menu, error) {
	m, err := u.checkMenu(ctx, m)
	if err != nil {
		return entities.Menu{}, err
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	return u.menus.Create(ctx, m)
}

// GetMenu is part of the catalog reader used when applying a menu to a quote.
func (u *CatalogUseCase) GetMenu(ctx context.Context, id string) (entities.Menu, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Menu{}, ErrInvalidMenuID
	}
	m, err := u.menus.GetByID(ctx, id)
	if err != nil {
		return entities.Menu{}, err
	}
	if m.ID == "" {
		return entities.Menu{}, ErrMenuNotFound
	}
	return m, nil
}

func (u *CatalogUseCase) ListMenus(ctx context.Context) ([]entities.Menu, error) {
	return u.menus.List(ctx)
}

func (u *CatalogUseCase) UpdateMenu(ctx context.Context, id string, m entities.Menu) (entities.Menu, error) {
	current, err := u.GetMenu(ctx, id)
	if err != nil {
		return entities.Menu{}, err
	}
	m, err = u.checkMenu(ctx, m)
	if err != nil {
		return entities.Menu{}, err
	}

	m.ID = current.ID
	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.menus.Update(ctx, m)
	if err != nil {
		return entities.Menu{}, err
	}
	if updated.ID == "" {
		return entities.Menu{}, ErrMenuNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteMenu(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMenuID
	}
	found, err := u.menus.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrMenuNotFound
	}
	return nil
}

// Snapshot returns the catalog used for pricing, served from the cache when
// possible. Cache failures are logged and fall through to the repositories.
func (u *CatalogUseCase) Snapshot(ctx context.Context) (pricing.Catalog, error) {
	if u.cache != nil {
		c, ok, err := u.cache.Get(ctx)
		if err != nil {
			u.log.Warn().Err(err).Msg("catalog cache read failed")
		} else if ok {
			return c, nil
		}
	}

	services, err := u.services.List(ctx)
	if err != nil {
		return pricing.Catalog{}, err
	}
	tables, err := u.tables.List(ctx)
	if err != nil {
		return pricing.Catalog{}, err
	}
	prices, err := u.tables.ListPrices(ctx)
	if err != nil {
		return pricing.Catalog{}, err
	}
	c := pricing.Catalog{Services: services, PriceTables: tables, Prices: prices}

	if u.cache != nil {
		if err := u.cache.Set(ctx, c); err != nil {
			u.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return c, nil
}

// checkMenu validates m and makes sure every service it lists exists.
func (u *CatalogUseCase) checkMenu(ctx context.Context, m entities.Menu) (entities.Menu, error) {
	m.Name = strings.TrimSpace(m.Name)
	ids := make([]string, 0, len(m.ServiceIDs))
	seen := make(map[string]bool, len(m.ServiceIDs))
	for _, id := range m.ServiceIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	m.ServiceIDs = ids

	if err := u.validate.Struct(m); err != nil {
		return entities.Menu{}, fmt.Errorf("%w: %v", ErrInvalidCatalogInput, err)
	}
	for _, id := range m.ServiceIDs {
		if _, err := u.GetService(ctx, id); err != nil {
			return entities.Menu{}, err
		}
	}
	return m, nil
}

func (u *CatalogUseCase) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		u.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func normalizeService(s entities.Service) entities.Service {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	if s.Unit == "" {
		s.Unit = entities.ServiceUnitFlat
	}
	return s
}
