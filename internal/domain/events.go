package domain

import "time"

type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
)

// OrderChange is what the realtime feed carries. Consumers refetch the
// order by id; the event itself is only a key plus the change kind.
type OrderChange struct {
	Type    ChangeType `json:"type"`
	OrderID uint64     `json:"orderId"`
}

type OrderCreatedEvent struct {
	OrderID     uint64    `json:"orderId"`
	UserID      string    `json:"userId"`
	TotalAmount float64   `json:"totalAmount"`
	ItemCount   int       `json:"itemCount"`
	OrderedAt   time.Time `json:"orderedAt"`
}

type OrderStatusChangedEvent struct {
	OrderID    uint64    `json:"orderId"`
	UserID     string    `json:"userId"`
	StatusID   uint64    `json:"statusId"`
	StatusName string    `json:"statusName"`
	ChangedAt  time.Time `json:"changedAt"`
}
