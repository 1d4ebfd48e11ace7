package models

import (
	"time"

	"github.com/fitdesk/memberdesk/pkg/types"
)

// Customer is a gym member record. The email unique index is the only
// defense against duplicate signups; application code relies on it rather
// than re-checking inside a transaction.
type Customer struct {
	ID          string       `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name        string       `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email       string       `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone       string       `gorm:"column:phone;type:varchar(20)" json:"phone"`
	DateOfBirth *time.Time   `gorm:"column:date_of_birth;default:null" json:"date_of_birth"`
	Gender      types.Gender `gorm:"column:gender;type:varchar(16)" json:"gender"`
	Address     string       `gorm:"column:address;type:text" json:"address"`
	JoinDate    time.Time    `gorm:"column:join_date;not null" json:"join_date"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Memberships []*Membership `gorm:"foreignKey:CustomerID" json:"memberships,omitempty"`
}

func (Customer) TableName() string {
	return "customer"
}
