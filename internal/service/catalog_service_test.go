package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"thattukada/internal/catalog"
	"thattukada/internal/domain"
)

func TestCreateProduct_BlankCategoryRejectedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore(catalog.Seed{})
	svc := NewCatalogService(store, Options{}, nil)

	for _, categoryID := range []string{"", "   "} {
		_, err := svc.CreateProduct(ctx, domain.Product{Name: "Vada", Price: 50, CategoryID: categoryID})
		if !errors.Is(err, ErrCategoryRequired) {
			t.Fatalf("expected ErrCategoryRequired, got %v", err)
		}
		if !strings.Contains(err.Error(), "category") {
			t.Fatalf("error message should mention category: %v", err)
		}
	}

	// записи не случилось
	list, _ := store.FetchProducts(ctx)
	for _, p := range list {
		if p.Name == "Vada" {
			t.Fatalf("rejected product reached the store")
		}
	}
}

func TestUpdateProduct_BlankCategoryRejected(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore(catalog.Seed{})
	svc := NewCatalogService(store, Options{}, nil)

	p, err := svc.CreateProduct(ctx, domain.Product{Name: "Bun", Price: 20, CategoryID: "4"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	blank := " "
	if _, err := svc.UpdateProduct(ctx, p.ID, catalog.ProductPatch{CategoryID: &blank}); !errors.Is(err, ErrCategoryRequired) {
		t.Fatalf("expected ErrCategoryRequired, got %v", err)
	}

	// патч без категории проходит
	price := int64(22)
	updated, err := svc.UpdateProduct(ctx, p.ID, catalog.ProductPatch{Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 22 || updated.CategoryID != "4" {
		t.Fatalf("patch application broken: %+v", updated)
	}
}

// slowStore подвешивает запись, чтобы проверить клиентский таймаут
type slowStore struct {
	catalog.Store
	delay time.Duration
}

func (s *slowStore) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	time.Sleep(s.delay)
	return s.Store.CreateProduct(ctx, p)
}

func TestCreateProduct_TimesOut(t *testing.T) {
	ctx := context.Background()
	store := &slowStore{Store: catalog.NewMemoryStore(catalog.Seed{}), delay: 200 * time.Millisecond}
	svc := NewCatalogService(store, Options{SaveTimeout: 20 * time.Millisecond}, nil)

	_, err := svc.CreateProduct(ctx, domain.Product{Name: "Vada", Price: 50, CategoryID: "1"})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("timeout message expected, got %v", err)
	}
}

// failingStore ломает чтения для проверки строгого и деградированного режимов
type failingStore struct {
	catalog.Store
	failProducts bool
	failOrders   bool
}

var errBackend = errors.New("backend down")

func (s *failingStore) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if s.failProducts {
		return nil, errBackend
	}
	return s.Store.FetchProducts(ctx)
}

func (s *failingStore) FetchOrders(ctx context.Context, f catalog.OrderFilter) ([]domain.Order, error) {
	if s.failOrders {
		return nil, errBackend
	}
	return s.Store.FetchOrders(ctx, f)
}

func TestDashboardStats_StrictSurfacesFetchError(t *testing.T) {
	store := &failingStore{Store: catalog.NewMemoryStore(catalog.Seed{}), failOrders: true}
	svc := NewCatalogService(store, Options{}, nil)

	if _, err := svc.DashboardStats(context.Background()); !errors.Is(err, errBackend) {
		t.Fatalf("strict mode must surface the fetch error, got %v", err)
	}
}

func TestDashboardStats_DegradedServesZeros(t *testing.T) {
	seed := catalog.Seed{Orders: []domain.Order{{ID: "o1", Total: 500, CreatedAt: time.Now()}}}
	store := &failingStore{Store: catalog.NewMemoryStore(seed), failProducts: true}
	svc := NewCatalogService(store, Options{DegradedStats: true}, nil)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("degraded mode must not fail: %v", err)
	}
	if stats.TotalProducts != 0 || stats.LowStockCount != 0 {
		t.Fatalf("product side should degrade to zeros: %+v", stats)
	}
	// выжившее чтение продолжает работать
	if stats.TotalRevenue != 500 {
		t.Fatalf("orders side lost: %+v", stats)
	}
}

func TestDashboardStats_ComposesBothFetches(t *testing.T) {
	now := time.Now()
	seed := catalog.Seed{
		Products: []domain.Product{{ID: "p1", Stock: 3}},
		Orders: []domain.Order{
			{ID: "o1", Total: 100, CreatedAt: now},
			{ID: "o2", Total: 200, CreatedAt: now},
		},
	}
	svc := NewCatalogService(catalog.NewMemoryStore(seed), Options{}, nil)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRevenue != 300 {
		t.Fatalf("total revenue expected 300, got %d", stats.TotalRevenue)
	}
	if stats.TodayOrders != 2 {
		t.Fatalf("today orders expected 2, got %d", stats.TodayOrders)
	}
	if stats.LowStockCount != 1 {
		t.Fatalf("low stock expected 1, got %d", stats.LowStockCount)
	}
}

func TestUploadImage_FallbackNotConfigured(t *testing.T) {
	svc := NewCatalogService(catalog.NewMemoryStore(catalog.Seed{}), Options{}, nil)

	_, err := svc.UploadImage(context.Background(), BucketProducts, "a.png", []byte{1}, "image/png")
	if !errors.Is(err, ErrStorageNotConfigured) {
		t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
	}

	_, err = svc.UploadImage(context.Background(), "nope", "a.png", []byte{1}, "image/png")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown bucket should be invalid input, got %v", err)
	}
}
