package catalog

import (
	"context"
	"testing"
	"time"

	"thattukada/internal/domain"
)

func TestMemoryStore_CategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{})

	created, err := store.CreateCategory(ctx, domain.Category{Name: "Pori", Slug: "pori", Image: "img"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("no id assigned")
	}

	list, err := store.FetchCategories(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	found := false
	for _, c := range list {
		if c.ID == created.ID {
			found = true
			if c.Name != "Pori" || c.Slug != "pori" || c.Image != "img" {
				t.Fatalf("round trip mismatch: %+v", c)
			}
		}
	}
	if !found {
		t.Fatalf("created category not in list")
	}

	if err := store.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = store.FetchCategories(ctx)
	for _, c := range list {
		if c.ID == created.ID {
			t.Fatalf("category still present after delete")
		}
	}
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{})

	p, err := store.CreateProduct(ctx, domain.Product{Name: "Vada", Price: 50, CategoryID: "1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestMemoryStore_UpdateAppliesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{})

	p, err := store.CreateProduct(ctx, domain.Product{
		Name:        "Bun",
		Description: "soft",
		Price:       20,
		CategoryID:  "4",
		Stock:       8,
		IsPopular:   true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPrice := int64(25)
	updated, err := store.UpdateProduct(ctx, p.ID, ProductPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 25 {
		t.Fatalf("price not updated: %d", updated.Price)
	}
	// остальные поля не тронуты
	if updated.Name != "Bun" || updated.Description != "soft" || updated.Stock != 8 || !updated.IsPopular {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestMemoryStore_UpdateMissingIDNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{})

	name := "x"
	if _, err := store.UpdateProduct(ctx, "prod-nope", ProductPatch{Name: &name}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.UpdateBanner(ctx, "banner-nope", BannerPatch{Title: &name}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.UpdateOrderStatus(ctx, "order-nope", domain.OrderStatusDelivered); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_BannerNullableFieldsCleared(t *testing.T) {
	ctx := context.Background()
	url := "https://x/promo"
	store := NewMemoryStore(Seed{
		Banners: []domain.OfferBanner{{ID: "b1", Title: "Promo", RedirectURL: &url, IsActive: true}},
	})

	// отсутствующий ключ поле не трогает
	title := "Promo 2"
	b, err := store.UpdateBanner(ctx, "b1", BannerPatch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.RedirectURL == nil || *b.RedirectURL != url {
		t.Fatalf("redirect_url lost on unrelated patch: %+v", b)
	}

	// пустая строка очищает nullable-поле
	empty := ""
	b, err = store.UpdateBanner(ctx, "b1", BannerPatch{RedirectURL: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.RedirectURL != nil {
		t.Fatalf("empty string should clear redirect_url, got %q", *b.RedirectURL)
	}
}

func TestMemoryStore_GalleryOrdering(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore(Seed{
		Gallery: []domain.GalleryItem{
			{ID: "g1", Type: domain.GalleryImage, URL: "a", SortOrder: 1, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "g2", Type: domain.GalleryImage, URL: "b", SortOrder: 10, CreatedAt: now.Add(-1 * time.Hour)},
			{ID: "g3", Type: domain.GalleryImage, URL: "c", SortOrder: 10, CreatedAt: now},
		},
	})

	created, err := store.CreateGalleryItem(ctx, domain.GalleryItem{Type: domain.GalleryImage, URL: "x", SortOrder: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := store.FetchGallery(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	want := []string{"g1", created.ID, "g3", "g2"} // sort_order asc, свежие первыми при равенстве
	if len(list) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, list[i].ID)
		}
	}
}

func TestMemoryStore_OrderFilters(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore(Seed{
		Orders: []domain.Order{
			{ID: "o1", Status: domain.OrderStatusPending, Total: 100, CreatedAt: now.Add(-48 * time.Hour)},
			{ID: "o2", Status: domain.OrderStatusDelivered, Total: 200, CreatedAt: now.Add(-24 * time.Hour)},
			{ID: "o3", Status: domain.OrderStatusPending, Total: 300, CreatedAt: now},
		},
	})

	list, err := store.FetchOrders(ctx, OrderFilter{Status: domain.OrderStatusPending})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("status filter: expected 2, got %d", len(list))
	}

	from := now.Add(-30 * time.Hour)
	list, _ = store.FetchOrders(ctx, OrderFilter{From: &from})
	if len(list) != 2 {
		t.Fatalf("from filter: expected 2, got %d", len(list))
	}

	to := now.Add(-30 * time.Hour)
	list, _ = store.FetchOrders(ctx, OrderFilter{To: &to})
	if len(list) != 1 || list[0].ID != "o1" {
		t.Fatalf("to filter: expected only o1, got %+v", list)
	}
}

func TestMemoryStore_OrderItemsSnapshotIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{
		Orders: []domain.Order{
			{ID: "o1", Status: domain.OrderStatusPending, Total: 90, Items: []domain.OrderItem{
				{ProductID: "p1", Name: "Vada", Price: 45, Quantity: 2},
			}},
		},
	})

	list, _ := store.FetchOrders(ctx, OrderFilter{})
	list[0].Items[0].Price = 9999 // мутация копии не должна пролезть в хранилище

	again, _ := store.FetchOrders(ctx, OrderFilter{})
	if again[0].Items[0].Price != 45 {
		t.Fatalf("order items snapshot was mutated through the returned copy")
	}
}

func TestMemoryStore_FetchReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultSeed())

	list, _ := store.FetchCategories(ctx)
	if len(list) == 0 {
		t.Fatalf("seed categories missing")
	}
	list[0].Name = "mutated"

	again, _ := store.FetchCategories(ctx)
	if again[0].Name == "mutated" {
		t.Fatalf("store state mutated through fetched slice")
	}
}

func TestMemoryStore_ProfileRoleUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{
		Profiles: []domain.Profile{{ID: "u1", Email: "a@b.c", Role: domain.RoleUser}},
	})

	p, err := store.UpdateProfileRole(ctx, "u1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Role != domain.RoleAdmin {
		t.Fatalf("role not updated: %s", p.Role)
	}
	if _, err := store.UpdateProfileRole(ctx, "u2", domain.RoleAdmin); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
