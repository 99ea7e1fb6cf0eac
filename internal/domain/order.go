package domain

import "time"

// Seeded status rows. The dashboard can move an order between any two of
// these; transitions are last-write-wins with no guard.
const (
	StatusPending    uint64 = 1
	StatusProcessing uint64 = 2
	StatusReady      uint64 = 3
	StatusCompleted  uint64 = 4
	StatusRejected   uint64 = 5
	StatusCancelled  uint64 = 6
)

type Status struct {
	ID   uint64 `json:"statusId" gorm:"column:id;primaryKey"`
	Name string `json:"statusName" gorm:"not null;uniqueIndex;size:50"`
}

func (Status) TableName() string { return "status" }

type Order struct {
	ID          uint64      `json:"orderId" gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string      `json:"userId" gorm:"not null;index;size:36"`
	User        *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StatusID    uint64      `json:"statusId" gorm:"not null;default:1"`
	Status      *Status     `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	TotalAmount float64     `json:"totalAmount" gorm:"not null"`
	Message     string      `json:"message" gorm:"size:500"`
	Items       []OrderItem `json:"orderItems,omitempty" gorm:"foreignKey:OrderID"`
	OrderedAt   time.Time   `json:"orderedAt" gorm:"autoCreateTime;index"`
}

func (Order) TableName() string { return "orders" }

// TotalQuantity sums item quantities, for notification summaries.
func (o *Order) TotalQuantity() int64 {
	var n int64
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

type OrderItem struct {
	ID        uint64    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   uint64    `json:"orderId" gorm:"not null;index"`
	MenuID    uint64    `json:"menuId" gorm:"not null;index"`
	Menu      *MenuItem `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
	Quantity  int64     `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Subtotal  float64   `json:"subtotal" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (OrderItem) TableName() string { return "order_items" }
