package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/naik-shashank/AgriMart/internal/middleware"
	"github.com/naik-shashank/AgriMart/internal/usecase"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase usecase.OrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter, authRequired gin.HandlerFunc) {
	orders := router.Group("/orders")
	{
		orders.POST("", authRequired, h.CreateOrder)
		orders.GET("", h.ListOrders)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.log.Error("Create order called without an authenticated user")
		ErrorResponse(c, http.StatusUnauthorized, "User identification missing")
		return
	}

	var requestBody struct {
		StoreID    string  `form:"storeId" json:"storeId"`
		OutletID   string  `form:"outletId" json:"outletId" binding:"required"`
		Orders     string  `form:"Orders" json:"Orders" binding:"required"`
		TotalPrice float64 `form:"totalPrice" json:"totalPrice"`
	}
	if err := c.ShouldBind(&requestBody); err != nil {
		h.log.Errorf("Failed to bind create order request for customer %s: %v", user.ID.Hex(), err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	h.log.Infof("Processing create order request for customer %s (outlet %s)", user.ID.Hex(), requestBody.OutletID)

	createdOrder, err := h.useCase.CreateOrder(c.Request.Context(), user, usecase.OrderInput{
		StoreID:    requestBody.StoreID,
		OutletID:   requestBody.OutletID,
		Lines:      requestBody.Orders,
		TotalPrice: requestBody.TotalPrice,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			h.log.Warnf("Invalid outlet reference %q for customer %s", requestBody.OutletID, user.ID.Hex())
			ErrorResponse(c, http.StatusBadRequest, "Invalid outletId: "+requestBody.OutletID)
			return
		}
		h.log.Errorf("Failed to create order for customer %s: %v", user.ID.Hex(), err)
		ErrorResponse(c, http.StatusInternalServerError, "Error creating order: "+err.Error())
		return
	}

	h.log.Infof("Order %s created successfully for customer %s", createdOrder.ID.Hex(), user.ID.Hex())
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"order":   createdOrder,
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := domain.OrderFilter{
		Status: c.Query("status"),
	}
	if customerIDStr := c.Query("customerId"); customerIDStr != "" {
		customerID, err := domain.ParseRef(customerIDStr)
		if err != nil {
			h.log.Warnf("Invalid customerId filter %q", customerIDStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid customerId filter")
			return
		}
		filter.CustomerID = &customerID
	}

	orders, total, err := h.useCase.ListOrders(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.log.Errorf("Failed to list orders: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	h.log.Infof("Retrieved %d of %d orders (page %d)", len(orders), total, page)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(orders),
		"total":   total,
		"page":    page,
		"orders":  orders,
	})
}
