package usecase

import (
	"context"
	"errors"
	"testing"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/domain/pricing"
	mock_interfaces "espaco_vista/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	services *mock_interfaces.MockIServiceRepository
	tables   *mock_interfaces.MockIPriceTableRepository
	menus    *mock_interfaces.MockIMenuRepository
	cache    *mock_interfaces.MockICatalogCache
}

func newCatalogUseCase(t *testing.T) (*CatalogUseCase, catalogMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := catalogMocks{
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		tables:   mock_interfaces.NewMockIPriceTableRepository(ctrl),
		menus:    mock_interfaces.NewMockIMenuRepository(ctrl),
		cache:    mock_interfaces.NewMockICatalogCache(ctrl),
	}
	return NewCatalogUseCase(m.services, m.tables, m.menus, m.cache, zerolog.Nop()), m
}

func TestCatalogUseCase_CreateService(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		uc, _ := newCatalogUseCase(t)
		_, err := uc.CreateService(context.Background(), entities.Service{Name: "Hall", Category: "garden"})
		if !errors.Is(err, ErrInvalidCatalogInput) {
			t.Fatalf("expected ErrInvalidCatalogInput, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc, _ := newCatalogUseCase(t)
		_, err := uc.CreateService(context.Background(), entities.Service{Name: "  ", Category: entities.ServiceCategorySpace})
		if !errors.Is(err, ErrInvalidCatalogInput) {
			t.Fatalf("expected ErrInvalidCatalogInput, got %v", err)
		}
	})

	t.Run("create success invalidates cache", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.services.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Name != "Hall" || s.Unit != entities.ServiceUnitFlat {
					t.Fatalf("unexpected service: %+v", s)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		res, err := uc.CreateService(context.Background(), entities.Service{Name: " Hall ", Category: entities.ServiceCategorySpace})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.services.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, errors.New("db"))

		_, err := uc.CreateService(context.Background(), entities.Service{Name: "Hall", Category: entities.ServiceCategorySpace})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCatalogUseCase_ServiceLookups(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newCatalogUseCase(t)
		if _, err := uc.GetService(context.Background(), " "); !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)
		if _, err := uc.GetService(context.Background(), "svc-1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("list filters by category", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{
			{ID: "a", Category: entities.ServiceCategorySpace},
			{ID: "b", Category: entities.ServiceCategoryFoodBeverage},
		}, nil)

		out, err := uc.ListServices(context.Background(), "food_beverage")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "b" {
			t.Fatalf("unexpected services: %+v", out)
		}
	})

	t.Run("update keeps created at", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		current := entities.Service{ID: "svc-1", Name: "Old", Category: entities.ServiceCategorySpace, Unit: entities.ServiceUnitFlat}
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(current, nil)
		m.services.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID != "svc-1" || s.Name != "New" || !s.CreatedAt.Equal(current.CreatedAt) {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if _, err := uc.UpdateService(context.Background(), "svc-1", entities.Service{Name: "New", Category: entities.ServiceCategorySpace}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.services.EXPECT().Delete(gomock.Any(), "svc-1").Return(false, nil)
		if err := uc.DeleteService(context.Background(), "svc-1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_SetServicePrice(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		uc, _ := newCatalogUseCase(t)
		if _, err := uc.SetServicePrice(context.Background(), "pt-1", "svc-1", -1); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("unknown table", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.tables.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PriceTable{}, nil)
		if _, err := uc.SetServicePrice(context.Background(), "pt-1", "svc-1", 10); !errors.Is(err, ErrPriceTableNotFound) {
			t.Fatalf("expected ErrPriceTableNotFound, got %v", err)
		}
	})

	t.Run("upsert success", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.tables.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PriceTable{ID: "pt-1"}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1"}, nil)
		m.tables.EXPECT().UpsertPrice(gomock.Any(), entities.ServicePrice{ServiceID: "svc-1", PriceTableID: "pt-1", Price: 42}).Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

		p, err := uc.SetServicePrice(context.Background(), "pt-1", "svc-1", 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Price != 42 {
			t.Fatalf("unexpected price: %+v", p)
		}
	})

	t.Run("delete missing price", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.tables.EXPECT().DeletePrice(gomock.Any(), "svc-1", "pt-1").Return(false, nil)
		if err := uc.DeleteServicePrice(context.Background(), "pt-1", "svc-1"); !errors.Is(err, ErrPriceNotFound) {
			t.Fatalf("expected ErrPriceNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_DeletePriceTableRemovesPrices(t *testing.T) {
	uc, m := newCatalogUseCase(t)
	m.tables.EXPECT().ListPricesByTable(gomock.Any(), "pt-1").Return([]entities.ServicePrice{
		{ServiceID: "a", PriceTableID: "pt-1"},
		{ServiceID: "b", PriceTableID: "pt-1"},
	}, nil)
	m.tables.EXPECT().DeletePrice(gomock.Any(), "a", "pt-1").Return(true, nil)
	m.tables.EXPECT().DeletePrice(gomock.Any(), "b", "pt-1").Return(true, nil)
	m.tables.EXPECT().Delete(gomock.Any(), "pt-1").Return(true, nil)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	if err := uc.DeletePriceTable(context.Background(), "pt-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCatalogUseCase_Menus(t *testing.T) {
	t.Run("empty services", func(t *testing.T) {
		uc, _ := newCatalogUseCase(t)
		_, err := uc.CreateMenu(context.Background(), entities.Menu{Name: "Buffet", ServiceIDs: []string{" "}})
		if !errors.Is(err, ErrInvalidCatalogInput) {
			t.Fatalf("expected ErrInvalidCatalogInput, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)
		_, err := uc.CreateMenu(context.Background(), entities.Menu{Name: "Buffet", ServiceIDs: []string{"svc-1"}})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("create dedupes services", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1"}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-2").Return(entities.Service{ID: "svc-2"}, nil)
		m.menus.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, menu entities.Menu) (entities.Menu, error) {
				if menu.ID == "" || len(menu.ServiceIDs) != 2 {
					t.Fatalf("unexpected menu: %+v", menu)
				}
				return menu, nil
			},
		)

		if _, err := uc.CreateMenu(context.Background(), entities.Menu{Name: "Buffet", ServiceIDs: []string{"svc-1", "svc-2", "svc-1"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.menus.EXPECT().GetByID(gomock.Any(), "menu-1").Return(entities.Menu{}, nil)
		if _, err := uc.GetMenu(context.Background(), "menu-1"); !errors.Is(err, ErrMenuNotFound) {
			t.Fatalf("expected ErrMenuNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_Snapshot(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		cached := pricing.Catalog{Services: []entities.Service{{ID: "svc-1"}}}
		m.cache.EXPECT().Get(gomock.Any()).Return(cached, true, nil)

		c, err := uc.Snapshot(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Services) != 1 || c.Services[0].ID != "svc-1" {
			t.Fatalf("unexpected catalog: %+v", c)
		}
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.cache.EXPECT().Get(gomock.Any()).Return(pricing.Catalog{}, false, nil)
		m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "svc-1"}}, nil)
		m.tables.EXPECT().List(gomock.Any()).Return([]entities.PriceTable{{ID: "pt-1"}}, nil)
		m.tables.EXPECT().ListPrices(gomock.Any()).Return([]entities.ServicePrice{{ServiceID: "svc-1", PriceTableID: "pt-1", Price: 10}}, nil)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

		c, err := uc.Snapshot(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Services) != 1 || len(c.PriceTables) != 1 || len(c.Prices) != 1 {
			t.Fatalf("unexpected catalog: %+v", c)
		}
	})

	t.Run("cache error falls back to repositories", func(t *testing.T) {
		uc, m := newCatalogUseCase(t)
		m.cache.EXPECT().Get(gomock.Any()).Return(pricing.Catalog{}, false, errors.New("redis down"))
		m.services.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.tables.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.tables.EXPECT().ListPrices(gomock.Any()).Return(nil, nil)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Snapshot(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		tables := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewCatalogUseCase(services, tables, nil, nil, zerolog.Nop())

		services.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
		if _, err := uc.Snapshot(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
