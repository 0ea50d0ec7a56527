package catalog

import (
	"context"
	"encoding/json"
	"time"

	"thattukada/internal/domain"
	"thattukada/internal/postgrest"
)

// RemoteStore хранилище поверх строчного API. Источником истины служит
// удалённая база; каждое чтение идёт по сети заново.
type RemoteStore struct {
	client *postgrest.Client
}

var _ Store = (*RemoteStore)(nil)

func NewRemoteStore(client *postgrest.Client) *RemoteStore {
	return &RemoteStore{client: client}
}

func (r *RemoteStore) Mode() string { return "remote" }

// Строки бэкенда хранятся в snake_case с «мягкими» типами, поэтому каждая
// сущность маппится явно: числовая и булева коэрция, nil вместо
// отсутствующих полей.

type productRow struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    *string      `json:"description"`
	Price          json.Number  `json:"price"`
	Image          *string      `json:"image"`
	CategoryID     *string      `json:"category_id"`
	Stock          *json.Number `json:"stock"`
	IsPopular      *bool        `json:"is_popular"`
	IsTodaySpecial *bool        `json:"is_today_special"`
	IsFeatured     *bool        `json:"is_featured"`
	CreatedAt      *string      `json:"created_at"`
}

func mapProductRow(r productRow) domain.Product {
	return domain.Product{
		ID:             r.ID,
		Name:           r.Name,
		Description:    strOrEmpty(r.Description),
		Price:          numToInt64(r.Price),
		Image:          strOrEmpty(r.Image),
		CategoryID:     strOrEmpty(r.CategoryID),
		Stock:          numPtrToInt64(r.Stock),
		IsPopular:      boolOrFalse(r.IsPopular),
		IsTodaySpecial: boolOrFalse(r.IsTodaySpecial),
		IsFeatured:     boolOrFalse(r.IsFeatured),
		CreatedAt:      parseTime(r.CreatedAt),
	}
}

type categoryRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      *string `json:"slug"`
	Image     *string `json:"image"`
	CreatedAt *string `json:"created_at"`
}

func mapCategoryRow(r categoryRow) domain.Category {
	return domain.Category{
		ID:        r.ID,
		Name:      r.Name,
		Slug:      strOrEmpty(r.Slug),
		Image:     strOrEmpty(r.Image),
		CreatedAt: parseTime(r.CreatedAt),
	}
}

type bannerRow struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Image       *string `json:"image"`
	CTA         *string `json:"cta"`
	RedirectURL *string `json:"redirect_url"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsActive    *bool   `json:"is_active"`
	CreatedAt   *string `json:"created_at"`
}

func mapBannerRow(r bannerRow) domain.OfferBanner {
	isActive := true // баннер активен по умолчанию
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return domain.OfferBanner{
		ID:          r.ID,
		Title:       r.Title,
		Subtitle:    strOrEmpty(r.Subtitle),
		Image:       strOrEmpty(r.Image),
		CTA:         strOrEmpty(r.CTA),
		RedirectURL: r.RedirectURL,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    isActive,
		CreatedAt:   parseTime(r.CreatedAt),
	}
}

type galleryRow struct {
	ID        string       `json:"id"`
	Type      *string      `json:"type"`
	URL       *string      `json:"url"`
	Caption   *string      `json:"caption"`
	SortOrder *json.Number `json:"sort_order"`
	CreatedAt *string      `json:"created_at"`
}

func mapGalleryRow(r galleryRow) domain.GalleryItem {
	typ := domain.GalleryImage
	if r.Type != nil && *r.Type != "" {
		typ = domain.GalleryType(*r.Type)
	}
	return domain.GalleryItem{
		ID:        r.ID,
		Type:      typ,
		URL:       strOrEmpty(r.URL),
		Caption:   strOrEmpty(r.Caption),
		SortOrder: numPtrToInt64(r.SortOrder),
		CreatedAt: parseTime(r.CreatedAt),
	}
}

type orderRow struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	UserEmail       *string            `json:"user_email"`
	UserName        *string            `json:"user_name"`
	Status          string             `json:"status"`
	Total           json.Number        `json:"total"`
	Items           []domain.OrderItem `json:"items"`
	DeliveryName    *string            `json:"delivery_name"`
	DeliveryMobile  *string            `json:"delivery_mobile"`
	DeliveryAddress *string            `json:"delivery_address"`
	CreatedAt       *string            `json:"created_at"`
	UpdatedAt       *string            `json:"updated_at"`
}

func mapOrderRow(r orderRow) domain.Order {
	items := r.Items
	if items == nil {
		items = []domain.OrderItem{}
	}
	return domain.Order{
		ID:              r.ID,
		UserID:          r.UserID,
		UserEmail:       strOrEmpty(r.UserEmail),
		UserName:        strOrEmpty(r.UserName),
		Status:          domain.OrderStatus(r.Status),
		Total:           numToInt64(r.Total),
		Items:           items,
		DeliveryName:    strOrEmpty(r.DeliveryName),
		DeliveryMobile:  strOrEmpty(r.DeliveryMobile),
		DeliveryAddress: strOrEmpty(r.DeliveryAddress),
		CreatedAt:       parseTime(r.CreatedAt),
		UpdatedAt:       parseTime(r.UpdatedAt),
	}
}

type profileRow struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	Role      string  `json:"role"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func mapProfileRow(r profileRow) domain.Profile {
	return domain.Profile{
		ID:        r.ID,
		Email:     r.Email,
		Name:      strOrEmpty(r.Name),
		Role:      domain.Role(r.Role),
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
}

// Products

func (r *RemoteStore) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	rows := []productRow{}
	if err := r.client.From("products").Order("created_at", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProductRow(row))
	}
	return out, nil
}

func (r *RemoteStore) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	payload := map[string]any{
		"name":             p.Name,
		"description":      p.Description,
		"price":            p.Price,
		"image":            p.Image,
		"category_id":      p.CategoryID,
		"stock":            p.Stock,
		"is_popular":       p.IsPopular,
		"is_today_special": p.IsTodaySpecial,
		"is_featured":      p.IsFeatured,
	}
	var row productRow
	if err := r.client.From("products").Insert(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapProductRow(row)
	return &mapped, nil
}

func (r *RemoteStore) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	payload := patch.payload()
	if len(payload) == 0 {
		// нечего писать — перечитываем текущую строку вместо пустого update
		rows := []productRow{}
		if err := r.client.From("products").Eq("id", id).Select(ctx, &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, ErrNotFound
		}
		mapped := mapProductRow(rows[0])
		return &mapped, nil
	}
	var row productRow
	if err := r.client.From("products").Eq("id", id).Update(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapProductRow(row)
	return &mapped, nil
}

func (r *RemoteStore) DeleteProduct(ctx context.Context, id string) error {
	return r.client.From("products").Eq("id", id).Delete(ctx)
}

// Categories

func (r *RemoteStore) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	rows := []categoryRow{}
	if err := r.client.From("categories").Order("created_at", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCategoryRow(row))
	}
	return out, nil
}

func (r *RemoteStore) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	payload := map[string]any{"name": c.Name, "slug": c.Slug, "image": c.Image}
	var row categoryRow
	if err := r.client.From("categories").Insert(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapCategoryRow(row)
	return &mapped, nil
}

func (r *RemoteStore) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error) {
	payload := patch.payload()
	if len(payload) == 0 {
		rows := []categoryRow{}
		if err := r.client.From("categories").Eq("id", id).Select(ctx, &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, ErrNotFound
		}
		mapped := mapCategoryRow(rows[0])
		return &mapped, nil
	}
	var row categoryRow
	if err := r.client.From("categories").Eq("id", id).Update(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapCategoryRow(row)
	return &mapped, nil
}

func (r *RemoteStore) DeleteCategory(ctx context.Context, id string) error {
	return r.client.From("categories").Eq("id", id).Delete(ctx)
}

// Banners

func (r *RemoteStore) FetchBanners(ctx context.Context) ([]domain.OfferBanner, error) {
	rows := []bannerRow{}
	if err := r.client.From("offer_banners").Order("created_at", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.OfferBanner, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapBannerRow(row))
	}
	return out, nil
}

func (r *RemoteStore) CreateBanner(ctx context.Context, b domain.OfferBanner) (*domain.OfferBanner, error) {
	payload := map[string]any{
		"title":        b.Title,
		"subtitle":     b.Subtitle,
		"image":        b.Image,
		"cta":          nullIfEmpty(b.CTA),
		"redirect_url": b.RedirectURL,
		"start_date":   b.StartDate,
		"end_date":     b.EndDate,
		"is_active":    b.IsActive,
	}
	var row bannerRow
	if err := r.client.From("offer_banners").Insert(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapBannerRow(row)
	return &mapped, nil
}

func (r *RemoteStore) UpdateBanner(ctx context.Context, id string, patch BannerPatch) (*domain.OfferBanner, error) {
	payload := patch.payload()
	if len(payload) == 0 {
		rows := []bannerRow{}
		if err := r.client.From("offer_banners").Eq("id", id).Select(ctx, &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, ErrNotFound
		}
		mapped := mapBannerRow(rows[0])
		return &mapped, nil
	}
	var row bannerRow
	if err := r.client.From("offer_banners").Eq("id", id).Update(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapBannerRow(row)
	return &mapped, nil
}

func (r *RemoteStore) DeleteBanner(ctx context.Context, id string) error {
	return r.client.From("offer_banners").Eq("id", id).Delete(ctx)
}

// Gallery

func (r *RemoteStore) FetchGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	rows := []galleryRow{}
	err := r.client.From("gallery").
		Order("sort_order", true).
		Order("created_at", false).
		Select(ctx, &rows)
	if err != nil {
		return nil, err
	}
	out := make([]domain.GalleryItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapGalleryRow(row))
	}
	return out, nil
}

func (r *RemoteStore) CreateGalleryItem(ctx context.Context, g domain.GalleryItem) (*domain.GalleryItem, error) {
	typ := g.Type
	if typ == "" {
		typ = domain.GalleryImage
	}
	payload := map[string]any{
		"type":       typ,
		"url":        g.URL,
		"caption":    g.Caption,
		"sort_order": g.SortOrder,
	}
	var row galleryRow
	if err := r.client.From("gallery").Insert(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapGalleryRow(row)
	return &mapped, nil
}

func (r *RemoteStore) UpdateGalleryItem(ctx context.Context, id string, patch GalleryPatch) (*domain.GalleryItem, error) {
	payload := patch.payload()
	if len(payload) == 0 {
		rows := []galleryRow{}
		if err := r.client.From("gallery").Eq("id", id).Select(ctx, &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, ErrNotFound
		}
		mapped := mapGalleryRow(rows[0])
		return &mapped, nil
	}
	var row galleryRow
	if err := r.client.From("gallery").Eq("id", id).Update(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapGalleryRow(row)
	return &mapped, nil
}

func (r *RemoteStore) DeleteGalleryItem(ctx context.Context, id string) error {
	return r.client.From("gallery").Eq("id", id).Delete(ctx)
}

// Orders

func (r *RemoteStore) FetchOrders(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	q := r.client.From("orders").Order("created_at", false)
	if f.From != nil {
		q = q.Gte("created_at", f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		q = q.Lte("created_at", f.To.UTC().Format(time.RFC3339))
	}
	if f.Status != "" {
		q = q.Eq("status", string(f.Status))
	}
	rows := []orderRow{}
	if err := q.Select(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapOrderRow(row))
	}
	return out, nil
}

func (r *RemoteStore) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	var row orderRow
	payload := map[string]any{"status": status}
	if err := r.client.From("orders").Eq("id", id).Update(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapOrderRow(row)
	return &mapped, nil
}

// Profiles

func (r *RemoteStore) FetchProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows := []profileRow{}
	if err := r.client.From("profiles").Order("created_at", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProfileRow(row))
	}
	return out, nil
}

func (r *RemoteStore) UpdateProfileRole(ctx context.Context, id string, role domain.Role) (*domain.Profile, error) {
	var row profileRow
	payload := map[string]any{"role": role}
	if err := r.client.From("profiles").Eq("id", id).Update(ctx, payload, &row); err != nil {
		return nil, err
	}
	mapped := mapProfileRow(row)
	return &mapped, nil
}

// mapping helpers

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func boolOrFalse(v *bool) bool {
	return v != nil && *v
}

func numToInt64(n json.Number) int64 {
	if n == "" {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return int64(f)
	}
	return 0
}

func numPtrToInt64(n *json.Number) int64 {
	if n == nil {
		return 0
	}
	return numToInt64(*n)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02",
}

func parseTime(v *string) time.Time {
	if v == nil || *v == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, *v); err == nil {
			return t
		}
	}
	return time.Time{}
}
