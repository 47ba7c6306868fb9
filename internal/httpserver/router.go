package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
	productsvc "shopcart/internal/service/product"
	usersvc "shopcart/internal/service/user"
)

// cartAPI is the caller-facing cart surface the handlers depend on.
type cartAPI interface {
	AddProduct(ctx context.Context, sessionID, productID string) (*domain.Product, error)
	RemoveProduct(sessionID, productID string)
	ProductsInCart(sessionID string) []domain.CartLine
	Total(sessionID string) decimal.Decimal
	Checkout(ctx context.Context, sessionID string, user domain.User) (*domain.Order, error)
}

type productAPI interface {
	List(ctx context.Context, page int) (*productsvc.Page, error)
}

type userAPI interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type orderReader interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// Deps carries the services the router needs.
type Deps struct {
	CartSvc    cartAPI
	ProductSvc productAPI
	UserSvc    userAPI
	OrderRepo  orderReader
}

// buildRouter wires routes for the shop API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.POST("/register", registerHandler(deps.UserSvc))
	router.GET("/orders", listOrdersHandler(deps.OrderRepo, deps.UserSvc))
	router.GET("/orders/:orderID", getOrderHandler(deps.OrderRepo))

	cart := router.Group("/cart", sessionMiddleware())
	cart.GET("", viewCartHandler(deps.CartSvc))
	cart.POST("/items/:productID", addToCartHandler(deps.CartSvc))
	cart.DELETE("/items/:productID", removeFromCartHandler(deps.CartSvc))
	cart.POST("/checkout", checkoutHandler(deps.CartSvc, deps.UserSvc))

	return router
}
