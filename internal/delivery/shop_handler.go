package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naik-shashank/AgriMart/internal/middleware"
	"github.com/naik-shashank/AgriMart/internal/usecase"
	"github.com/sirupsen/logrus"
)

const defaultMaxDistance = 5000

type ShopHandler struct {
	useCase usecase.ShopUseCase
	log     *logrus.Logger
}

func NewShopHandler(uc usecase.ShopUseCase, logger *logrus.Logger) *ShopHandler {
	return &ShopHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ShopHandler) RegisterRoutes(router gin.IRouter, authRequired gin.HandlerFunc) {
	shops := router.Group("/shops")
	{
		shops.GET("/nearby", authRequired, h.NearbyShops)
		shops.GET("/nearby/:dist", authRequired, h.NearbyShops)
	}
}

func (h *ShopHandler) NearbyShops(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.log.Error("Nearby shops called without an authenticated user")
		ErrorResponse(c, http.StatusUnauthorized, "User identification missing")
		return
	}

	maxDistance := defaultMaxDistance
	if distStr := c.Param("dist"); distStr != "" {
		dist, err := strconv.Atoi(distStr)
		if err != nil || dist <= 0 {
			h.log.Warnf("Invalid dist parameter %q, using default %d", distStr, defaultMaxDistance)
		} else {
			maxDistance = dist
		}
	}

	h.log.Infof("Searching shops within %dm for user %s", maxDistance, user.ID.Hex())
	shops, err := h.useCase.NearbyShops(c.Request.Context(), user, maxDistance)
	if err != nil {
		h.log.Errorf("Failed to find nearby shops for user %s: %v", user.ID.Hex(), err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve nearby shops")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"size":   len(shops),
		"shops":  shops,
	})
}
