package domain

import "time"

// Product представляет позицию меню в витрине
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          int64     `json:"price"`
	Image          string    `json:"image"`
	CategoryID     string    `json:"category_id"`
	Stock          int64     `json:"stock"`
	IsPopular      bool      `json:"is_popular"`
	IsTodaySpecial bool      `json:"is_today_special"`
	IsFeatured     bool      `json:"is_featured"`
	CreatedAt      time.Time `json:"created_at"`
}

// Category категория меню; slug используется для фильтрации и ссылок
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// OfferBanner рекламный баннер. Период активности — только метаданные для
// отображения, фасад по датам не фильтрует.
type OfferBanner struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Image       string    `json:"image"`
	CTA         string    `json:"cta,omitempty"`
	RedirectURL *string   `json:"redirect_url"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// GalleryType тип элемента галереи
type GalleryType string

const (
	GalleryImage GalleryType = "image"
	GalleryVideo GalleryType = "video"
)

// GalleryItem элемент галереи, сортируется по sort_order, затем по дате создания
type GalleryItem struct {
	ID        string      `json:"id"`
	Type      GalleryType `json:"type"`
	URL       string      `json:"url"`
	Caption   string      `json:"caption,omitempty"`
	SortOrder int64       `json:"sort_order"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus проверяет, что статус один из допустимых
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem позиция в заказе. Снимок товара на момент оформления:
// последующие правки Product его не меняют.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Image     string `json:"image"`
}

// Order сущность заказа
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	UserEmail       string      `json:"user_email,omitempty"`
	UserName        string      `json:"user_name,omitempty"`
	Status          OrderStatus `json:"status"`
	Total           int64       `json:"total"`
	Items           []OrderItem `json:"items"`
	DeliveryName    string      `json:"delivery_name,omitempty"`
	DeliveryMobile  string      `json:"delivery_mobile,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Role роль пользователя; admin открывает доступ к админке
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile профиль пользователя. Создаётся внешним сервисом аутентификации,
// фасад умеет только читать список и менять роль.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
