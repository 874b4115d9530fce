package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileDocument mirrors a document in the profiles collection.
type ProfileDocument struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	Email           string              `bson:"email"`
	Name            string              `bson:"name"`
	Age             int                 `bson:"age"`
	Role            string              `bson:"role"`
	Pincode         string              `bson:"pincode,omitempty"`
	MonthlyIncome   float64             `bson:"monthlyIncome"`
	MonthlySpending float64             `bson:"monthlySpending"`
	IsInvestor      string              `bson:"isInvestor"`
	Investments     InvestmentsDocument `bson:"investments"`
	CostOfLiving    float64             `bson:"costOfLiving"`
	UserClass       string              `bson:"userClass"`
	CreatedAt       time.Time           `bson:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt"`
}

// InvestmentsDocument is the nested investments record.
type InvestmentsDocument struct {
	Gold   float64 `bson:"gold"`
	FD     float64 `bson:"fd"`
	Stocks float64 `bson:"stocks"`
	Crypto float64 `bson:"crypto"`
}
