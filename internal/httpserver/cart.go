package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
)

type cartResponse struct {
	ID         string             `json:"id"`
	CreatedAt  string             `json:"created_at"`
	Items      []cartItemResponse `json:"items"`
	TotalPrice float64            `json:"total_price"`
}

type cartItemResponse struct {
	ID         int64           `json:"id"`
	Product    cartItemProduct `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice float64         `json:"total_price"`
}

// cartItemProduct is the abbreviated product rendering used inside carts.
type cartItemProduct struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toCartItemResponse(item))
	}
	return cartResponse{
		ID:         cart.ID,
		CreatedAt:  cart.CreatedAt.UTC().Format(time.RFC3339),
		Items:      items,
		TotalPrice: cart.TotalPrice().InexactFloat64(),
	}
}

func toCartItemResponse(item domain.CartItem) cartItemResponse {
	return cartItemResponse{
		ID: item.ID,
		Product: cartItemProduct{
			ID:        item.Product.ID,
			Title:     item.Product.Title,
			UnitPrice: item.Product.UnitPrice.InexactFloat64(),
		},
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice().InexactFloat64(),
	}
}

func createCart(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Create(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCartResponse(*cart))
	}
}

func getCart(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(*cart))
	}
}

func deleteCart(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listCartItems(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListItems(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]cartItemResponse, 0, len(items))
		for _, item := range items {
			out = append(out, toCartItemResponse(item))
		}
		c.JSON(http.StatusOK, out)
	}
}

func addCartItem(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		item, err := svc.AddItem(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCartItemResponse(*item))
	}
}

func getCartItem(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := int64Param(c, "itemID")
		if !ok {
			return
		}
		item, err := svc.GetItem(c.Request.Context(), c.Param("id"), itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartItemResponse(*item))
	}
}

func updateCartItem(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := int64Param(c, "itemID")
		if !ok {
			return
		}
		var in cartsvc.UpdateItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		item, err := svc.UpdateItem(c.Request.Context(), c.Param("id"), itemID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartItemResponse(*item))
	}
}

func deleteCartItem(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := int64Param(c, "itemID")
		if !ok {
			return
		}
		if err := svc.DeleteItem(c.Request.Context(), c.Param("id"), itemID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
