package http

import (
	"errors"
	"net/http"

	"canteen-service/internal/auth"
	"canteen-service/internal/infra/imagehost"
	"canteen-service/internal/infra/realtime"
	"canteen-service/internal/repository"
	"canteen-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth          *services.AuthService
	users         *services.UserService
	menu          *services.MenuService
	cart          *services.CartService
	orders        *services.OrderService
	notifications *services.NotificationService
	feed          realtime.ChangeSubscriber
	uploader      imagehost.Uploader
	tokens        *auth.TokenMaker
}

func NewHandler(
	authSvc *services.AuthService,
	users *services.UserService,
	menu *services.MenuService,
	cart *services.CartService,
	orders *services.OrderService,
	notifications *services.NotificationService,
	feed realtime.ChangeSubscriber,
	uploader imagehost.Uploader,
	tokens *auth.TokenMaker,
) *Handler {
	return &Handler{
		auth:          authSvc,
		users:         users,
		menu:          menu,
		cart:          cart,
		orders:        orders,
		notifications: notifications,
		feed:          feed,
		uploader:      uploader,
		tokens:        tokens,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/login", h.Login)

	authed := r.Group("", Authenticate(h.tokens))
	{
		authed.GET("/auth/callback", h.AuthCallback)

		authed.GET("/catalog", h.ListCatalog)
		authed.GET("/catalog/:id", h.GetMenuItem)
		authed.GET("/categories", h.ListCategories)
		authed.GET("/statuses", h.ListStatuses)

		authed.GET("/cart", h.GetCart)
		authed.POST("/cart", h.AddCartItem)
		authed.PUT("/cart/:menuId", h.UpdateCartItem)
		authed.DELETE("/cart/:menuId", h.RemoveCartItem)
		authed.DELETE("/cart", h.ClearCart)

		authed.POST("/orders", h.CreateOrder)
		authed.GET("/orders", h.ListMyOrders)
		authed.GET("/orders/:id", h.GetOrder)
		authed.GET("/events/orders/:id", h.StreamOrder)

		authed.POST("/push/subscriptions", h.SubscribePush)
		authed.DELETE("/push/subscriptions", h.UnsubscribePush)
		authed.POST("/push/test", h.TestPush)
	}

	admin := authed.Group("", AdminOnly())
	{
		admin.POST("/menu", h.CreateMenuItem)
		admin.PUT("/menu/:id", h.UpdateMenuItem)
		admin.DELETE("/menu/:id", h.DeleteMenuItem)

		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.POST("/users", h.CreateUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/dashboard/orders", h.ListAllOrders)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
		admin.GET("/dashboard/sales", h.SalesByDate)
		admin.GET("/events/orders", h.StreamOrders)

		admin.POST("/push", h.SendRawPush)
		admin.POST("/upload/image", h.UploadImage)
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrStatusNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrInvalidMenuInput),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidSubscription),
		errors.Is(err, repository.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, repository.ErrDuplicateEntry):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
