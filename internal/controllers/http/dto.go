package http

import "encoding/json"

type SignUpRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	MenuID   uint64 `json:"menuId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	// Zero or negative removes the row.
	Quantity int64 `json:"quantity"`
}

type OrderLineRequest struct {
	MenuID   uint64 `json:"menuId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest with no items checks out the caller's cart instead.
type CreateOrderRequest struct {
	Items   []OrderLineRequest `json:"items"`
	Message string             `json:"message"`
}

type UpdateStatusRequest struct {
	StatusID uint64 `json:"statusId" binding:"required"`
}

type MenuRequest struct {
	Name       string  `json:"menuName" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Stock      int64   `json:"stock" binding:"min=0"`
	CategoryID uint64  `json:"categoryId" binding:"required"`
	ImageURL   string  `json:"imageUrl"`
}

type UserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	RoleID   uint64 `json:"roleId" binding:"required,oneof=1 2"`
}

type SubscriptionKeys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

type PushSubscribeRequest struct {
	Endpoint string           `json:"endpoint" binding:"required,url"`
	Keys     SubscriptionKeys `json:"keys" binding:"required"`
}

type PushUnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// RawPushRequest lets an admin push an arbitrary payload to one
// subscription, for end-to-end delivery testing.
type RawPushRequest struct {
	Subscription PushSubscribeRequest `json:"subscription" binding:"required"`
	Payload      json.RawMessage      `json:"payload" binding:"required"`
}
