package catalog

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"thattukada/internal/domain"
)

// MemoryStore fallback-хранилище в памяти. Живёт в рамках процесса,
// состояние теряется при перезапуске. Конструируется явно, чтобы тесты
// могли поднимать изолированные экземпляры.
type MemoryStore struct {
	mu         sync.RWMutex
	seq        int64
	products   []domain.Product
	categories []domain.Category
	banners    []domain.OfferBanner
	gallery    []domain.GalleryItem
	orders     []domain.Order
	profiles   []domain.Profile
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore создаёт хранилище с начальными данными
func NewMemoryStore(seed Seed) *MemoryStore {
	return &MemoryStore{
		// seq на основе времени, чтобы id не повторялись между перезапусками
		seq:        time.Now().UnixMilli(),
		products:   append([]domain.Product{}, seed.Products...),
		categories: append([]domain.Category{}, seed.Categories...),
		banners:    append([]domain.OfferBanner{}, seed.Banners...),
		gallery:    append([]domain.GalleryItem{}, seed.Gallery...),
		orders:     append([]domain.Order{}, seed.Orders...),
		profiles:   append([]domain.Profile{}, seed.Profiles...),
	}
}

func (m *MemoryStore) Mode() string { return "fallback" }

// nextID локальный уникальный id: префикс сущности плюс счётчик от метки времени.
// Вызывать под write-блокировкой.
func (m *MemoryStore) nextID(prefix string) string {
	m.seq++
	return prefix + "-" + strconv.FormatInt(m.seq, 10)
}

// Products

func (m *MemoryStore) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Product{}, m.products...), nil
}

func (m *MemoryStore) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID("prod")
	p.CreatedAt = time.Now()
	m.products = append(m.products, p)
	cp := p
	return &cp, nil
}

func (m *MemoryStore) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			patch.apply(&m.products[i])
			cp := m.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// idempotent: отсутствие записи не ошибка
	m.products = deleteByID(m.products, id, func(p domain.Product) string { return p.ID })
	return nil
}

// Categories

func (m *MemoryStore) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Category{}, m.categories...), nil
}

func (m *MemoryStore) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextID("cat")
	c.CreatedAt = time.Now()
	// новые категории первыми, как при сортировке created_at desc
	m.categories = append([]domain.Category{c}, m.categories...)
	cp := c
	return &cp, nil
}

func (m *MemoryStore) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.categories {
		if m.categories[i].ID == id {
			patch.apply(&m.categories[i])
			cp := m.categories[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = deleteByID(m.categories, id, func(c domain.Category) string { return c.ID })
	return nil
}

// Banners

func (m *MemoryStore) FetchBanners(ctx context.Context) ([]domain.OfferBanner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.OfferBanner{}, m.banners...), nil
}

func (m *MemoryStore) CreateBanner(ctx context.Context, b domain.OfferBanner) (*domain.OfferBanner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.nextID("banner")
	b.CreatedAt = time.Now()
	m.banners = append([]domain.OfferBanner{b}, m.banners...)
	cp := b
	return &cp, nil
}

func (m *MemoryStore) UpdateBanner(ctx context.Context, id string, patch BannerPatch) (*domain.OfferBanner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.banners {
		if m.banners[i].ID == id {
			patch.apply(&m.banners[i])
			cp := m.banners[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteBanner(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banners = deleteByID(m.banners, id, func(b domain.OfferBanner) string { return b.ID })
	return nil
}

// Gallery

func (m *MemoryStore) FetchGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]domain.GalleryItem{}, m.gallery...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) CreateGalleryItem(ctx context.Context, g domain.GalleryItem) (*domain.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = m.nextID("gal")
	g.CreatedAt = time.Now()
	if g.Type == "" {
		g.Type = domain.GalleryImage
	}
	m.gallery = append(m.gallery, g)
	cp := g
	return &cp, nil
}

func (m *MemoryStore) UpdateGalleryItem(ctx context.Context, id string, patch GalleryPatch) (*domain.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.gallery {
		if m.gallery[i].ID == id {
			patch.apply(&m.gallery[i])
			cp := m.gallery[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteGalleryItem(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gallery = deleteByID(m.gallery, id, func(g domain.GalleryItem) string { return g.ID })
	return nil
}

// Orders

func (m *MemoryStore) FetchOrders(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if f.From != nil && o.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && o.CreatedAt.After(*f.To) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, copyOrder(o))
	}
	return out, nil
}

func (m *MemoryStore) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			m.orders[i].UpdatedAt = time.Now()
			cp := copyOrder(m.orders[i])
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// Profiles

func (m *MemoryStore) FetchProfiles(ctx context.Context) ([]domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Profile{}, m.profiles...), nil
}

func (m *MemoryStore) UpdateProfileRole(ctx context.Context, id string, role domain.Role) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.profiles {
		if m.profiles[i].ID == id {
			m.profiles[i].Role = role
			m.profiles[i].UpdatedAt = time.Now()
			cp := m.profiles[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// copyOrder копирует заказ вместе с позициями: снимок позиций
// не должен разделять память с хранилищем
func copyOrder(o domain.Order) domain.Order {
	cp := o
	cp.Items = append([]domain.OrderItem{}, o.Items...)
	return cp
}

func deleteByID[T any](list []T, id string, idOf func(T) string) []T {
	out := list[:0]
	for _, v := range list {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}
