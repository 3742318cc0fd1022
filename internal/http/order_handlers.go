package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddeliver/internal/domain"
	"fooddeliver/internal/service"
)

type createOrderReq struct {
	Items               []domain.OrderItem `json:"items"`
	Name                string             `json:"name"`
	Phone               string             `json:"phone"`
	Email               string             `json:"email"`
	Address             string             `json:"address"`
	DeliveryDate        string             `json:"deliveryDate"`
	DeliveryTime        string             `json:"deliveryTime"`
	SpecialInstructions string             `json:"specialInstructions"`
	PromoCode           string             `json:"promoCode"`
	RestaurantID        *int64             `json:"restaurantId"`
	UserID              string             `json:"userId"`
}

// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.PlaceOrder(c, service.CreateOrderInput{
		Items:               req.Items,
		Name:                req.Name,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		DeliveryDate:        req.DeliveryDate,
		DeliveryTime:        req.DeliveryTime,
		SpecialInstructions: req.SpecialInstructions,
		PromoCode:           req.PromoCode,
		RestaurantID:        req.RestaurantID,
		UserID:              req.UserID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// @Summary Get order status
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrder(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary List current user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	list, err := s.orders.ListOrders(c, currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Cancel order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (s *Server) cancelOrder(c *gin.Context) {
	o, err := s.orders.CancelOrder(c, c.Param("id"), currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": o})
}

// @Summary Reorder items from a past order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/reorder [post]
func (s *Server) reorder(c *gin.Context) {
	items, restaurantID, err := s.orders.Reorder(c, c.Param("id"), currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "restaurantId": restaurantID})
}

type validatePromoReq struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal"`
}

// @Summary Validate promo code against a subtotal
// @Tags promo
// @Accept json
// @Produce json
// @Param input body validatePromoReq true "Promo check"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /promo/validate [post]
func (s *Server) validatePromo(c *gin.Context) {
	var req validatePromoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid promo code"})
		return
	}
	quote, err := s.pricing.ValidatePromo(c, req.Code, req.Subtotal)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"discount": quote.Discount,
		"code":     quote.PromoCode,
		"type":     quote.PromoType,
	})
}
