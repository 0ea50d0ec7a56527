// Package cart хранит корзину сессии: упорядоченный список позиций
// с производными итогами. Итоги всегда считаются от текущего состояния,
// отдельно они не хранятся.
package cart

import (
	"sync"

	"thattukada/internal/domain"
)

// Item позиция корзины: снимок товара и количество (всегда >= 1)
type Item struct {
	Product  domain.Product `json:"product"`
	Quantity int64          `json:"quantity"`
}

// Cart корзина одной сессии. Позиции идут в порядке добавления,
// на один товар — не больше одной позиции.
type Cart struct {
	mu    sync.RWMutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// AddItem добавляет товар. Если позиция уже есть, количество увеличивается,
// второй строки на тот же товар не появляется.
func (c *Cart) AddItem(p domain.Product, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: quantity})
}

// UpdateQuantity выставляет количество; ноль и меньше удаляет позицию,
// нулевых строк в корзине не бывает
func (c *Cart) UpdateQuantity(productID string, quantity int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem удаляет позицию; отсутствие позиции не ошибка
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	out := c.items[:0]
	for _, it := range c.items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}
	c.items = out
}

// Clear опустошает корзину (после «оформления» заказа)
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items возвращает копию списка позиций в порядке добавления
func (c *Cart) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Item{}, c.items...)
}

// TotalItems сумма количеств по всем позициям
func (c *Cart) TotalItems() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int64
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice сумма цена×количество по всем позициям
func (c *Cart) TotalPrice() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total int64
	for _, it := range c.items {
		total += it.Product.Price * it.Quantity
	}
	return total
}

// Manager выдаёт корзину по идентификатору сессии, создавая её при
// первом обращении. Корзины живут в памяти процесса.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[sessionID]
	if !ok {
		c = New()
		m.carts[sessionID] = c
	}
	return c
}
