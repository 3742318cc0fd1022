package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddeliver/internal/domain"
)

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type authResp struct {
	User  userView `json:"user"`
	Token string   `json:"token"`
}

func toUserView(u *domain.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerReq true "Registration"
// @Success 200 {object} authResp
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (s *Server) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, and password are required"})
		return
	}
	u, token, err := s.accounts.Register(c, req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResp{User: toUserView(u), Token: token})
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} authResp
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, token, err := s.accounts.Login(c, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResp{User: toUserView(u), Token: token})
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]userView
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": toUserView(currentUser(c))})
}

// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (s *Server) logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if len(token) > 7 {
		token = token[7:] // strip "Bearer "
	}
	if err := s.accounts.Logout(c, token); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Favorites handlers

// @Summary List favorite items
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.MenuItem
// @Router /favorites [get]
func (s *Server) listFavorites(c *gin.Context) {
	items, err := s.accounts.ListFavorites(c, currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Add favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Menu item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /favorites/{itemId} [post]
func (s *Server) addFavorite(c *gin.Context) {
	itemID, err := parseID(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.accounts.AddFavorite(c, currentUser(c).ID, itemID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Menu item ID"
// @Success 200 {object} map[string]string
// @Router /favorites/{itemId} [delete]
func (s *Server) removeFavorite(c *gin.Context) {
	itemID, err := parseID(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.accounts.RemoveFavorite(c, currentUser(c).ID, itemID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// Addresses handlers

type addAddressReq struct {
	Address string `json:"address" binding:"required"`
	Label   string `json:"label"`
}

// @Summary List addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Address
// @Router /addresses [get]
func (s *Server) listAddresses(c *gin.Context) {
	list, err := s.accounts.ListAddresses(c, currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Add address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body addAddressReq true "Address"
// @Success 200 {object} domain.Address
// @Failure 400 {object} map[string]string
// @Router /addresses [post]
func (s *Server) addAddress(c *gin.Context) {
	var req addAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}
	a, err := s.accounts.AddAddress(c, currentUser(c).ID, req.Address, req.Label)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary Delete address
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} map[string]string
// @Router /addresses/{id} [delete]
func (s *Server) deleteAddress(c *gin.Context) {
	if err := s.accounts.DeleteAddress(c, currentUser(c).ID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
