package catalog

import "thattukada/internal/domain"

// Патчи частичного обновления. Nil-поле означает «ключ не передан»:
// оно не попадает в payload удалённого запроса и не трогает запись
// в памяти. У nullable-полей баннера пустая строка очищает значение.

// ProductPatch частичное обновление товара
type ProductPatch struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Price          *int64  `json:"price"`
	Image          *string `json:"image"`
	CategoryID     *string `json:"category_id"`
	Stock          *int64  `json:"stock"`
	IsPopular      *bool   `json:"is_popular"`
	IsTodaySpecial *bool   `json:"is_today_special"`
	IsFeatured     *bool   `json:"is_featured"`
}

func (p ProductPatch) payload() map[string]any {
	m := map[string]any{}
	putStr(m, "name", p.Name)
	putStr(m, "description", p.Description)
	putInt(m, "price", p.Price)
	putStr(m, "image", p.Image)
	putStr(m, "category_id", p.CategoryID)
	putInt(m, "stock", p.Stock)
	putBool(m, "is_popular", p.IsPopular)
	putBool(m, "is_today_special", p.IsTodaySpecial)
	putBool(m, "is_featured", p.IsFeatured)
	return m
}

func (p ProductPatch) apply(dst *domain.Product) {
	setStr(&dst.Name, p.Name)
	setStr(&dst.Description, p.Description)
	setInt(&dst.Price, p.Price)
	setStr(&dst.Image, p.Image)
	setStr(&dst.CategoryID, p.CategoryID)
	setInt(&dst.Stock, p.Stock)
	setBool(&dst.IsPopular, p.IsPopular)
	setBool(&dst.IsTodaySpecial, p.IsTodaySpecial)
	setBool(&dst.IsFeatured, p.IsFeatured)
}

// CategoryPatch частичное обновление категории
type CategoryPatch struct {
	Name  *string `json:"name"`
	Slug  *string `json:"slug"`
	Image *string `json:"image"`
}

func (p CategoryPatch) payload() map[string]any {
	m := map[string]any{}
	putStr(m, "name", p.Name)
	putStr(m, "slug", p.Slug)
	putStr(m, "image", p.Image)
	return m
}

func (p CategoryPatch) apply(dst *domain.Category) {
	setStr(&dst.Name, p.Name)
	setStr(&dst.Slug, p.Slug)
	setStr(&dst.Image, p.Image)
}

// BannerPatch частичное обновление баннера
type BannerPatch struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Image       *string `json:"image"`
	CTA         *string `json:"cta"`
	RedirectURL *string `json:"redirect_url"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsActive    *bool   `json:"is_active"`
}

func (p BannerPatch) payload() map[string]any {
	m := map[string]any{}
	putStr(m, "title", p.Title)
	putStr(m, "subtitle", p.Subtitle)
	putStr(m, "image", p.Image)
	putStr(m, "cta", p.CTA)
	putNullableStr(m, "redirect_url", p.RedirectURL)
	putNullableStr(m, "start_date", p.StartDate)
	putNullableStr(m, "end_date", p.EndDate)
	putBool(m, "is_active", p.IsActive)
	return m
}

func (p BannerPatch) apply(dst *domain.OfferBanner) {
	setStr(&dst.Title, p.Title)
	setStr(&dst.Subtitle, p.Subtitle)
	setStr(&dst.Image, p.Image)
	setStr(&dst.CTA, p.CTA)
	setNullableStr(&dst.RedirectURL, p.RedirectURL)
	setNullableStr(&dst.StartDate, p.StartDate)
	setNullableStr(&dst.EndDate, p.EndDate)
	setBool(&dst.IsActive, p.IsActive)
}

// GalleryPatch частичное обновление элемента галереи
type GalleryPatch struct {
	Type      *domain.GalleryType `json:"type"`
	URL       *string             `json:"url"`
	Caption   *string             `json:"caption"`
	SortOrder *int64              `json:"sort_order"`
}

func (p GalleryPatch) payload() map[string]any {
	m := map[string]any{}
	if p.Type != nil {
		m["type"] = *p.Type
	}
	putStr(m, "url", p.URL)
	putStr(m, "caption", p.Caption)
	putInt(m, "sort_order", p.SortOrder)
	return m
}

func (p GalleryPatch) apply(dst *domain.GalleryItem) {
	if p.Type != nil {
		dst.Type = *p.Type
	}
	setStr(&dst.URL, p.URL)
	setStr(&dst.Caption, p.Caption)
	setInt(&dst.SortOrder, p.SortOrder)
}

func putStr(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func putInt(m map[string]any, key string, v *int64) {
	if v != nil {
		m[key] = *v
	}
}

func putBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

// пустая строка переводится в null у бэкенда
func putNullableStr(m map[string]any, key string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		m[key] = nil
		return
	}
	m[key] = *v
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setNullableStr(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	val := *v
	*dst = &val
}
