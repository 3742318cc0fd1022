package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} domain.Restaurant
// @Router /restaurants [get]
func (s *Server) listRestaurants(c *gin.Context) {
	list, err := s.catalog.ListRestaurants(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get restaurant by id
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} domain.Restaurant
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [get]
func (s *Server) getRestaurant(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	r, err := s.catalog.GetRestaurant(c, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary List menu items with ratings
// @Tags menu
// @Produce json
// @Param restaurantId query int false "Filter by restaurant"
// @Success 200 {array} service.RatedMenuItem
// @Router /menu [get]
func (s *Server) listMenu(c *gin.Context) {
	var restaurantID *int64
	if v := c.Query("restaurantId"); v != "" {
		id, err := parseID(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurantId"})
			return
		}
		restaurantID = &id
	}
	items, err := s.catalog.ListMenu(c, restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type addReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// @Summary Review a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Param input body addReviewReq true "Review"
// @Success 200 {object} domain.Review
// @Failure 400 {object} map[string]string
// @Router /menu/{id}/review [post]
func (s *Server) addReview(c *gin.Context) {
	itemID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req addReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	u := currentUser(c)
	r, err := s.catalog.AddReview(c, itemID, u.ID, u.Name, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary List reviews for a menu item
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {array} domain.Review
// @Router /menu/{id}/reviews [get]
func (s *Server) listReviews(c *gin.Context) {
	itemID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.catalog.ListReviews(c, itemID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
