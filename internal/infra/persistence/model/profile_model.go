package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. Email carries the unique index used as
// the upsert key.
type ProfileModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email           string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string           `gorm:"type:varchar(100);not null"`
	Age             int              `gorm:"not null"`
	Role            string           `gorm:"type:varchar(20);not null;default:Student"`
	Pincode         string           `gorm:"type:varchar(20)"`
	MonthlyIncome   float64          `gorm:"not null;default:0"`
	MonthlySpending float64          `gorm:"not null;default:0"`
	IsInvestor      string           `gorm:"type:varchar(3);not null;default:no"`
	Investments     InvestmentsModel `gorm:"embedded;embeddedPrefix:investments_"`
	CostOfLiving    float64          `gorm:"not null;default:0"`
	UserClass       string           `gorm:"type:varchar(20);not null;default:Unknown"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InvestmentsModel is stored inline as investments_* columns.
type InvestmentsModel struct {
	Gold   float64 `gorm:"not null;default:0"`
	FD     float64 `gorm:"not null;default:0"`
	Stocks float64 `gorm:"not null;default:0"`
	Crypto float64 `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
