// Package catalog реализует доступ к коллекциям витрины: товары, категории,
// баннеры, галерея, заказы и профили. Два взаимозаменяемых хранилища —
// удалённое (строчный API) и in-memory (fallback) — выбираются один раз
// при старте.
package catalog

import (
	"context"
	"errors"
	"time"

	"thattukada/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена (только в fallback-режиме;
// удалённый бэкенд сообщает о своих ошибках сам)
var ErrNotFound = errors.New("not found")

// OrderFilter параметры выборки заказов
type OrderFilter struct {
	From   *time.Time
	To     *time.Time
	Status domain.OrderStatus
}

// Store единый CRUD-интерфейс над коллекциями витрины.
// Каждое чтение идёт в источник заново, кэширования нет.
type Store interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	FetchCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	FetchBanners(ctx context.Context) ([]domain.OfferBanner, error)
	CreateBanner(ctx context.Context, b domain.OfferBanner) (*domain.OfferBanner, error)
	UpdateBanner(ctx context.Context, id string, patch BannerPatch) (*domain.OfferBanner, error)
	DeleteBanner(ctx context.Context, id string) error

	FetchGallery(ctx context.Context) ([]domain.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, g domain.GalleryItem) (*domain.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, id string, patch GalleryPatch) (*domain.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	FetchOrders(ctx context.Context, f OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)

	FetchProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfileRole(ctx context.Context, id string, role domain.Role) (*domain.Profile, error)

	// Mode сообщает режим работы: "remote" или "fallback"
	Mode() string
}
