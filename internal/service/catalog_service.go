package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"thattukada/internal/catalog"
	"thattukada/internal/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrCategoryRequired товар нельзя сохранить без категории
	ErrCategoryRequired = errors.New("please select a category")
	// ErrTimeout сохранение не уложилось в клиентский таймаут
	ErrTimeout = errors.New("request timed out, check your connection and try again")
	// ErrStorageNotConfigured загрузка файлов доступна только с удалённым бэкендом
	ErrStorageNotConfigured = errors.New("storage not configured")
)

// Бакеты хранилища картинок
const (
	BucketProducts   = "products"
	BucketCategories = "categories"
	BucketBanners    = "banners"
	BucketGallery    = "gallery"
)

// Uploader загрузка файла с возвратом публичного URL
type Uploader interface {
	UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)
}

// Options настройки сервиса каталога
type Options struct {
	// Uploader nil в fallback-режиме
	Uploader Uploader
	// SaveTimeout клиентский таймаут на запись товара из админки
	SaveTimeout time.Duration
	// DegradedStats true — ошибка чтения в сводке заменяется пустым
	// результатом вместо отказа всей панели
	DegradedStats bool
}

// CatalogService валидация поверх хранилища: проверка категории до записи,
// таймаут на сохранение товара, сводка для панели
type CatalogService struct {
	store  catalog.Store
	opts   Options
	logger *zap.Logger
}

func NewCatalogService(store catalog.Store, opts Options, logger *zap.Logger) *CatalogService {
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = 25 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{store: store, opts: opts, logger: logger}
}

// Store даёт доступ к операциям хранилища без дополнительной логики
func (s *CatalogService) Store() catalog.Store { return s.store }

// Mode режим хранилища: remote или fallback
func (s *CatalogService) Mode() string { return s.store.Mode() }

// CreateProduct проверяет категорию до любой записи и сохраняет
// с клиентским таймаутом
func (s *CatalogService) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.CategoryID = strings.TrimSpace(p.CategoryID)
	if p.CategoryID == "" {
		return nil, ErrCategoryRequired
	}
	return runWithTimeout(s.opts.SaveTimeout, func() (*domain.Product, error) {
		return s.store.CreateProduct(ctx, p)
	})
}

// UpdateProduct не даёт стереть категорию и пишет с тем же таймаутом
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch catalog.ProductPatch) (*domain.Product, error) {
	if patch.CategoryID != nil && strings.TrimSpace(*patch.CategoryID) == "" {
		return nil, ErrCategoryRequired
	}
	return runWithTimeout(s.opts.SaveTimeout, func() (*domain.Product, error) {
		return s.store.UpdateProduct(ctx, id, patch)
	})
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.store.DeleteProduct(ctx, id)
}

// UploadImage кладёт файл в бакет и возвращает публичный URL.
// Имя дополняется меткой времени, чтобы не перетирать старые файлы.
func (s *CatalogService) UploadImage(ctx context.Context, bucket, filename string, data []byte, contentType string) (string, error) {
	switch bucket {
	case BucketProducts, BucketCategories, BucketBanners, BucketGallery:
	default:
		return "", fmt.Errorf("%w: unknown bucket %q", ErrInvalidInput, bucket)
	}
	if s.opts.Uploader == nil {
		return "", ErrStorageNotConfigured
	}
	path := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
	return s.opts.Uploader.UploadObject(ctx, bucket, path, data, contentType)
}

// DashboardStats собирает сводку из fetchProducts и fetchOrders.
// В строгом режиме ошибка любого чтения возвращается наружу; в
// деградированном — заменяется пустым набором с записью в лог.
func (s *CatalogService) DashboardStats(ctx context.Context) (*catalog.DashboardStats, error) {
	products, err := s.store.FetchProducts(ctx)
	if err != nil {
		if !s.opts.DegradedStats {
			return nil, err
		}
		s.logger.Warn("dashboard stats: products fetch failed, serving degraded stats", zap.Error(err))
		products = nil
	}
	orders, err := s.store.FetchOrders(ctx, catalog.OrderFilter{})
	if err != nil {
		if !s.opts.DegradedStats {
			return nil, err
		}
		s.logger.Warn("dashboard stats: orders fetch failed, serving degraded stats", zap.Error(err))
		orders = nil
	}
	stats := catalog.ComputeDashboardStats(products, orders, time.Now())
	return &stats, nil
}

// runWithTimeout гонка записи с таймаутом. Сам вызов при таймауте
// не отменяется — как и в админке, результат просто игнорируется.
func runWithTimeout[T any](timeout time.Duration, fn func() (*T, error)) (*T, error) {
	type result struct {
		value *T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()
	select {
	case r := <-done:
		return r.value, r.err
	case <-time.After(timeout):
		return nil, ErrTimeout
	}
}
