package httpapi

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"thattukada/internal/catalog"
	"thattukada/internal/domain"
)

// Products

type createProductReq struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int64  `json:"price"`
	Image          string `json:"image"`
	CategoryID     string `json:"category_id"`
	Stock          int64  `json:"stock"`
	IsPopular      bool   `json:"is_popular"`
	IsTodaySpecial bool   `json:"is_today_special"`
	IsFeatured     bool   `json:"is_featured"`
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	list, err := s.svc.Store().FetchProducts(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body createProductReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.svc.CreateProduct(c.Request.Context(), domain.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Image:          req.Image,
		CategoryID:     req.CategoryID,
		Stock:          req.Stock,
		IsPopular:      req.IsPopular,
		IsTodaySpecial: req.IsTodaySpecial,
		IsFeatured:     req.IsFeatured,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body catalog.ProductPatch true "Fields to change"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var patch catalog.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.svc.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories

type createCategoryReq struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	list, err := s.svc.Store().FetchCategories(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body createCategoryReq true "Category"
// @Success 201 {object} domain.Category
// @Router /categories [post]
func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cat, err := s.svc.Store().CreateCategory(c.Request.Context(), domain.Category{
		Name:  req.Name,
		Slug:  req.Slug,
		Image: req.Image,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param input body catalog.CategoryPatch true "Fields to change"
// @Success 200 {object} domain.Category
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [put]
func (s *Server) updateCategory(c *gin.Context) {
	var patch catalog.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cat, err := s.svc.Store().UpdateCategory(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary Delete category
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Router /categories/{id} [delete]
func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.svc.Store().DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Banners

type createBannerReq struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Image       string  `json:"image"`
	CTA         string  `json:"cta"`
	RedirectURL *string `json:"redirect_url"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsActive    *bool   `json:"is_active"`
}

// @Summary List banners
// @Tags banners
// @Produce json
// @Success 200 {array} domain.OfferBanner
// @Router /banners [get]
func (s *Server) listBanners(c *gin.Context) {
	list, err := s.svc.Store().FetchBanners(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create banner
// @Tags banners
// @Accept json
// @Produce json
// @Param input body createBannerReq true "Banner"
// @Success 201 {object} domain.OfferBanner
// @Router /banners [post]
func (s *Server) createBanner(c *gin.Context) {
	var req createBannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	isActive := true // по умолчанию баннер активен
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	b, err := s.svc.Store().CreateBanner(c.Request.Context(), domain.OfferBanner{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Image:       req.Image,
		CTA:         req.CTA,
		RedirectURL: req.RedirectURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    isActive,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// @Summary Update banner
// @Tags banners
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Param input body catalog.BannerPatch true "Fields to change"
// @Success 200 {object} domain.OfferBanner
// @Failure 404 {object} map[string]string
// @Router /banners/{id} [put]
func (s *Server) updateBanner(c *gin.Context) {
	var patch catalog.BannerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	b, err := s.svc.Store().UpdateBanner(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary Delete banner
// @Tags banners
// @Param id path string true "Banner ID"
// @Success 204
// @Router /banners/{id} [delete]
func (s *Server) deleteBanner(c *gin.Context) {
	if err := s.svc.Store().DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Gallery

type createGalleryReq struct {
	Type      domain.GalleryType `json:"type"`
	URL       string             `json:"url"`
	Caption   string             `json:"caption"`
	SortOrder int64              `json:"sort_order"`
}

// @Summary List gallery items
// @Tags gallery
// @Produce json
// @Success 200 {array} domain.GalleryItem
// @Router /gallery [get]
func (s *Server) listGallery(c *gin.Context) {
	list, err := s.svc.Store().FetchGallery(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param input body createGalleryReq true "Gallery item"
// @Success 201 {object} domain.GalleryItem
// @Router /gallery [post]
func (s *Server) createGalleryItem(c *gin.Context) {
	var req createGalleryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	g, err := s.svc.Store().CreateGalleryItem(c.Request.Context(), domain.GalleryItem{
		Type:      req.Type,
		URL:       req.URL,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// @Summary Update gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID"
// @Param input body catalog.GalleryPatch true "Fields to change"
// @Success 200 {object} domain.GalleryItem
// @Failure 404 {object} map[string]string
// @Router /gallery/{id} [put]
func (s *Server) updateGalleryItem(c *gin.Context) {
	var patch catalog.GalleryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	g, err := s.svc.Store().UpdateGalleryItem(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// @Summary Delete gallery item
// @Tags gallery
// @Param id path string true "Gallery item ID"
// @Success 204
// @Router /gallery/{id} [delete]
func (s *Server) deleteGalleryItem(c *gin.Context) {
	if err := s.svc.Store().DeleteGalleryItem(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Orders

// @Summary List orders
// @Tags orders
// @Produce json
// @Param from query string false "Created at or after (RFC3339)"
// @Param to query string false "Created at or before (RFC3339)"
// @Param status query string false "Order status"
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	var f catalog.OrderFilter
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		f.To = &t
	}
	if v := c.Query("status"); v != "" {
		status := domain.OrderStatus(v)
		if !domain.ValidOrderStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		f.Status = status
	}
	list, err := s.svc.Store().FetchOrders(c.Request.Context(), f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type updateOrderStatusReq struct {
	Status domain.OrderStatus `json:"status"`
}

// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body updateOrderStatusReq true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if !domain.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	o, err := s.svc.Store().UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// Profiles

// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} domain.Profile
// @Router /profiles [get]
func (s *Server) listProfiles(c *gin.Context) {
	list, err := s.svc.Store().FetchProfiles(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type updateProfileRoleReq struct {
	Role domain.Role `json:"role"`
}

// @Summary Update profile role
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param input body updateProfileRoleReq true "New role"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/{id}/role [patch]
func (s *Server) updateProfileRole(c *gin.Context) {
	var req updateProfileRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Role != domain.RoleAdmin && req.Role != domain.RoleUser {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}
	p, err := s.svc.Store().UpdateProfileRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Admin

// @Summary Dashboard stats
// @Tags admin
// @Produce json
// @Success 200 {object} catalog.DashboardStats
// @Router /admin/stats [get]
func (s *Server) dashboardStats(c *gin.Context) {
	stats, err := s.svc.DashboardStats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Upload image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param bucket formData string true "Storage bucket"
// @Param file formData file true "File"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/upload [post]
func (s *Server) uploadImage(c *gin.Context) {
	bucket := c.PostForm("bucket")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	url, err := s.svc.UploadImage(c.Request.Context(), bucket, fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
