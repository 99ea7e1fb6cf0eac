package domain

import "time"

const (
	RoleCustomer uint64 = 1
	RoleAdmin    uint64 = 2
)

type Role struct {
	ID   uint64 `json:"roleId" gorm:"column:id;primaryKey"`
	Name string `json:"roleName" gorm:"not null;uniqueIndex;size:50"`
}

func (Role) TableName() string { return "roles" }

// User ids are UUID strings so accounts provisioned by an external
// identity provider keep their original id.
type User struct {
	ID           string    `json:"userId" gorm:"column:id;primaryKey;size:36"`
	Username     string    `json:"username" gorm:"not null;size:100"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex;size:255"`
	PasswordHash string    `json:"-" gorm:"size:255"`
	RoleID       uint64    `json:"roleId" gorm:"not null;default:1"`
	Role         *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.RoleID == RoleAdmin }
