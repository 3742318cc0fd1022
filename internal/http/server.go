package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fooddeliver/internal/domain"
	"fooddeliver/internal/repository"
	"fooddeliver/internal/service"
)

type Server struct {
	engine   *gin.Engine
	accounts *service.AccountService
	catalog  *service.CatalogService
	pricing  *service.PricingService
	orders   *service.OrderService
}

func NewServer(accounts *service.AccountService, catalog *service.CatalogService, pricing *service.PricingService, orders *service.OrderService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, accounts: accounts, catalog: catalog, pricing: pricing, orders: orders}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.GET("/me", s.requireAuth, s.me)
		auth.POST("/logout", s.requireAuth, s.logout)

		api.GET("/restaurants", s.listRestaurants)
		api.GET("/restaurants/:id", s.getRestaurant)

		api.GET("/menu", s.listMenu)
		api.POST("/menu/:id/review", s.requireAuth, s.addReview)
		api.GET("/menu/:id/reviews", s.listReviews)

		favorites := api.Group("/favorites", s.requireAuth)
		favorites.GET("", s.listFavorites)
		favorites.POST(":itemId", s.addFavorite)
		favorites.DELETE(":itemId", s.removeFavorite)

		addresses := api.Group("/addresses", s.requireAuth)
		addresses.GET("", s.listAddresses)
		addresses.POST("", s.addAddress)
		addresses.DELETE(":id", s.deleteAddress)

		api.POST("/promo/validate", s.validatePromo)

		orders := api.Group("/orders")
		orders.POST("", s.createOrder)
		orders.GET(":id", s.getOrder)
		orders.GET("", s.requireAuth, s.listOrders)
		orders.POST(":id/cancel", s.requireAuth, s.cancelOrder)
		orders.POST(":id/reorder", s.requireAuth, s.reorder)
	}
}

const userKey = "user"

// requireAuth резолвит bearer-токен в пользователя; ядро дальше видит
// только id, не схему токена
func (s *Server) requireAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	u, err := s.accounts.Authenticate(c, token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(userKey, u)
	c.Next()
}

func currentUser(c *gin.Context) *domain.User {
	v, _ := c.Get(userKey)
	u, _ := v.(*domain.User)
	return u
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func writeError(c *gin.Context, err error) {
	c.JSON(mapErrorToStatus(err), errorBody(err))
}

func errorBody(err error) gin.H {
	var promoErr *service.PromoMinimumError
	if errors.As(err, &promoErr) {
		return gin.H{"error": err.Error(), "minOrder": promoErr.MinOrder}
	}
	var minErr *service.MinOrderError
	if errors.As(err, &minErr) {
		return gin.H{"error": err.Error(), "minOrder": minErr.MinOrder, "restaurant": minErr.Restaurant}
	}
	return gin.H{"error": err.Error()}
}

func mapErrorToStatus(err error) int {
	var promoErr *service.PromoMinimumError
	var minErr *service.MinOrderError
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrNotOwner):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCreds):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrAlreadyCancelled):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidPromoCode),
		errors.Is(err, service.ErrNonPositiveTotal),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrTooLateToCancel),
		errors.As(err, &promoErr),
		errors.As(err, &minErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
