package httpapi

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"thattukada/internal/cart"
	"thattukada/internal/domain"
)

type cartView struct {
	Items      []cart.Item `json:"items"`
	TotalItems int64       `json:"total_items"`
	TotalPrice int64       `json:"total_price"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Cart session"
// @Success 200 {object} cartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(s.sessionCart(c)))
}

type addCartItemReq struct {
	Product  domain.Product `json:"product"`
	Quantity int64          `json:"quantity"`
}

// @Summary Add item to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session"
// @Param input body addCartItemReq true "Product snapshot and quantity"
// @Success 200 {object} cartView
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
		return
	}
	sc := s.sessionCart(c)
	sc.AddItem(req.Product, req.Quantity)
	c.JSON(http.StatusOK, viewOf(sc))
}

type updateCartItemReq struct {
	Quantity int64 `json:"quantity"`
}

// @Summary Set item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session"
// @Param productId path string true "Product ID"
// @Param input body updateCartItemReq true "New quantity; zero removes the line"
// @Success 200 {object} cartView
// @Router /cart/items/{productId} [patch]
func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sc := s.sessionCart(c)
	sc.UpdateQuantity(c.Param("productId"), req.Quantity)
	c.JSON(http.StatusOK, viewOf(sc))
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Cart session"
// @Param productId path string true "Product ID"
// @Success 200 {object} cartView
// @Router /cart/items/{productId} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	sc := s.sessionCart(c)
	sc.RemoveItem(c.Param("productId"))
	c.JSON(http.StatusOK, viewOf(sc))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Cart session"
// @Success 200 {object} cartView
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	sc := s.sessionCart(c)
	sc.Clear()
	c.JSON(http.StatusOK, viewOf(sc))
}

var mobileRe = regexp.MustCompile(`^\d{10}$`)

type checkoutReq struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

// @Summary Checkout
// @Description Валидирует данные доставки и очищает корзину. Реальный заказ
// @Description не создаётся, оплата не выполняется.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session"
// @Param input body checkoutReq true "Delivery details"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /checkout [post]
func (s *Server) checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	fieldErrs := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrs["name"] = "Name is required"
	}
	mobile := strings.ReplaceAll(req.Mobile, " ", "")
	if strings.TrimSpace(req.Mobile) == "" {
		fieldErrs["mobile"] = "Mobile number is required"
	} else if !mobileRe.MatchString(mobile) {
		fieldErrs["mobile"] = "Enter valid 10-digit number"
	}
	if strings.TrimSpace(req.Address) == "" {
		fieldErrs["address"] = "Delivery address is required"
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	sc := s.sessionCart(c)
	if len(sc.Items()) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}
	total := sc.TotalPrice()
	sc.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "placed", "total": total})
}
