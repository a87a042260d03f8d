package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/naik-shashank/AgriMart/internal/middleware"
	"github.com/naik-shashank/AgriMart/internal/storage"
	"github.com/naik-shashank/AgriMart/internal/usecase"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	files   storage.FileStore
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, files storage.FileStore, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		files:   files,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter, authRequired gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.POST("", authRequired, h.CreateProduct)
		products.GET("", h.ListProducts)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.log.Error("Create product called without an authenticated user")
		ErrorResponse(c, http.StatusUnauthorized, "User identification missing")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.log.Warn("Create product request without an image file")
		ErrorResponse(c, http.StatusBadRequest, "No image file provided")
		return
	}

	imgPath, err := h.files.Save(file)
	if err != nil {
		h.log.Errorf("Failed to store uploaded image '%s': %v", file.Filename, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	// The image is on disk from here on. Every failure path below must
	// delete it again; only a persisted product keeps the file.
	committed := false
	defer func() {
		if committed {
			return
		}
		if rmErr := h.files.Remove(imgPath); rmErr != nil {
			h.log.Errorf("Failed to remove uploaded image %s after error: %v", imgPath, rmErr)
		}
	}()

	name := c.PostForm("name")
	category := c.PostForm("category")
	priceStr := c.PostForm("price")
	if name == "" || category == "" || priceStr == "" {
		h.log.Warnf("Create product request with missing fields (name: %q, category: %q, price: %q)", name, category, priceStr)
		ErrorResponse(c, http.StatusBadRequest, "Name, category, and price are required")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		h.log.Warnf("Create product request with non-numeric price %q", priceStr)
		ErrorResponse(c, http.StatusBadRequest, "Name, category, and price are required")
		return
	}

	product := &domain.Product{
		Name:        name,
		Category:    category,
		Price:       price,
		Description: c.PostForm("description"),
		Img:         imgPath,
		OutletID:    user.OutletID,
	}

	createdProduct, err := h.useCase.CreateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, domain.ErrProductExists) {
			h.log.Warnf("Duplicate product name '%s'", product.Name)
			ErrorResponse(c, http.StatusBadRequest, "Product with this name already exists")
			return
		}
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		ErrorResponse(c, statusCode, "Failed to create product: "+err.Error())
		return
	}
	committed = true

	h.log.Infof("Product created successfully: ID %s, Name %s", createdProduct.ID.Hex(), createdProduct.Name)
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"product": createdProduct,
	})
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := domain.ProductFilter{
		Category: c.Query("category"),
	}
	if outletIDStr := c.Query("outletId"); outletIDStr != "" {
		outletID, err := domain.ParseRef(outletIDStr)
		if err != nil {
			h.log.Warnf("Invalid outletId filter %q", outletIDStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid outletId filter")
			return
		}
		filter.OutletID = &outletID
	}

	products, total, err := h.useCase.ListProducts(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	h.log.Infof("Retrieved %d of %d products (page %d)", len(products), total, page)
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"results":  len(products),
		"total":    total,
		"page":     page,
		"products": products,
	})
}
