package httpserver

import (
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	cartsvc "storefront/internal/service/cart"
	collectionsvc "storefront/internal/service/collection"
	customersvc "storefront/internal/service/customer"
	ordersvc "storefront/internal/service/order"
	productsvc "storefront/internal/service/product"
	reviewsvc "storefront/internal/service/review"
)

// Deps bundles the services the router needs.
type Deps struct {
	ProductSvc    *productsvc.Service
	CollectionSvc *collectionsvc.Service
	ReviewSvc     *reviewsvc.Service
	CartSvc       *cartsvc.Service
	OrderSvc      *ordersvc.Service
	CustomerSvc   *customersvc.Service
}

var validatorSetup sync.Once

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	useJSONFieldNames()

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	collections := router.Group("/collections")
	collections.GET("", listCollections(deps.CollectionSvc))
	collections.POST("", createCollection(deps.CollectionSvc))
	collections.GET("/:id", getCollection(deps.CollectionSvc))
	collections.PUT("/:id", updateCollection(deps.CollectionSvc))
	collections.PATCH("/:id", patchCollection(deps.CollectionSvc))
	collections.DELETE("/:id", deleteCollection(deps.CollectionSvc))

	products := router.Group("/products")
	products.GET("", listProducts(deps.ProductSvc))
	products.POST("", createProduct(deps.ProductSvc))
	products.GET("/:id", getProduct(deps.ProductSvc))
	products.PUT("/:id", updateProduct(deps.ProductSvc))
	products.PATCH("/:id", patchProduct(deps.ProductSvc))
	products.DELETE("/:id", deleteProduct(deps.ProductSvc))

	reviews := products.Group("/:id/reviews")
	reviews.GET("", listReviews(deps.ReviewSvc))
	reviews.POST("", createReview(deps.ReviewSvc))
	reviews.GET("/:reviewID", getReview(deps.ReviewSvc))
	reviews.PUT("/:reviewID", updateReview(deps.ReviewSvc))
	reviews.PATCH("/:reviewID", patchReview(deps.ReviewSvc))
	reviews.DELETE("/:reviewID", deleteReview(deps.ReviewSvc))

	carts := router.Group("/carts")
	carts.POST("", createCart(deps.CartSvc))
	carts.GET("/:id", getCart(deps.CartSvc))
	carts.DELETE("/:id", deleteCart(deps.CartSvc))

	items := carts.Group("/:id/items")
	items.GET("", listCartItems(deps.CartSvc))
	items.POST("", addCartItem(deps.CartSvc))
	items.GET("/:itemID", getCartItem(deps.CartSvc))
	items.PATCH("/:itemID", updateCartItem(deps.CartSvc))
	items.DELETE("/:itemID", deleteCartItem(deps.CartSvc))

	customers := router.Group("/customers")
	customers.GET("", listCustomers(deps.CustomerSvc))
	customers.POST("", createCustomer(deps.CustomerSvc))
	customers.GET("/:id", getCustomer(deps.CustomerSvc))
	customers.PUT("/:id", updateCustomer(deps.CustomerSvc))
	customers.PATCH("/:id", patchCustomer(deps.CustomerSvc))

	orders := router.Group("/orders")
	orders.GET("", listOrders(deps.OrderSvc))
	orders.POST("", placeOrder(deps.OrderSvc))
	orders.GET("/:id", getOrder(deps.OrderSvc))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// useJSONFieldNames makes the binding validator report errors under json
// field names, so the 400 body matches the request payload keys.
func useJSONFieldNames() {
	validatorSetup.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
