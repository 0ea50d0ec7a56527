package catalog

import "thattukada/internal/domain"

// Seed начальное содержимое in-memory хранилища
type Seed struct {
	Products   []domain.Product
	Categories []domain.Category
	Banners    []domain.OfferBanner
	Gallery    []domain.GalleryItem
	Orders     []domain.Order
	Profiles   []domain.Profile
}

// DefaultSeed демонстрационные данные витрины. Товары приходят из бэкенда,
// поэтому их в наборе нет — категорий и баннеров хватает, чтобы интерфейс
// оставался живым без подключения.
func DefaultSeed() Seed {
	return Seed{
		Categories: []domain.Category{
			{ID: "1", Name: "Thattuvada set", Slug: "thattuvada", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/cgxaivem0cp8n56m1u1r"},
			{ID: "2", Name: "Pori Varieties", Slug: "pori", Image: "https://b.zmtcdn.com/data/pictures/chains/0/18922970/d8ab3231f44fa57f27f2f7857560f922.jpg"},
			{ID: "3", Name: "Norukal Varieties", Slug: "norukal", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/2a3348b57198771c136e2bdcec74d090"},
			{ID: "4", Name: "Bun Varieties", Slug: "bun", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/eszpucbfjdh1ai30xftb"},
			{ID: "5", Name: "Combo Varieties", Slug: "combo", Image: "https://b.zmtcdn.com/data/pictures/chains/0/18922970/d8ab3231f44fa57f27f2f7857560f922.jpg"},
			{ID: "6", Name: "Today Special", Slug: "today-special", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/f9z0nqp5qb0p4j1o1wo2"},
			{ID: "90s", Name: "90's Kid Special", Slug: "90s-kid-special", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/f9z0nqp5qb0p4j1o1wo2"},
		},
		Banners: []domain.OfferBanner{
			{ID: "1", Title: "20% OFF", Subtitle: "On your first order above ₹199", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/cgxaivem0cp8n56m1u1r", CTA: "Order Now", IsActive: true},
			{ID: "2", Title: "Bun Varieties", Subtitle: "With every Thattuvada combo", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/eszpucbfjdh1ai30xftb", CTA: "Grab Offer", IsActive: true},
			{ID: "3", Title: "Today Special", Subtitle: "Extra crispy Norukal at same price", Image: "https://media-assets.swiggy.com/swiggy/image/upload/f_auto,q_auto,fl_lossy/f9z0nqp5qb0p4j1o1wo2", CTA: "See Menu", IsActive: true},
		},
	}
}
