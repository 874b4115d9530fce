// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Investments holds the user's holdings per asset class.
type Investments struct {
	Gold   float64 `json:"gold"`
	FD     float64 `json:"fd"`
	Stocks float64 `json:"stocks"`
	Crypto float64 `json:"crypto"`
}

// Profile is the persisted financial self-description of one user, keyed by email.
type Profile struct {
	Email           string       `json:"email"`
	Name            string       `json:"name"`
	Age             int          `json:"age"`
	Role            Role         `json:"role"`
	Pincode         string       `json:"pincode,omitempty"`
	MonthlyIncome   float64      `json:"monthlyIncome"`
	MonthlySpending float64      `json:"monthlySpending"`
	IsInvestor      InvestorFlag `json:"isInvestor"`
	Investments     Investments  `json:"investments"`
	CostOfLiving    float64      `json:"costOfLiving"`
	UserClass       UserClass    `json:"userClass"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// InvestmentsPatch is a submitted investments record. Absent sub-fields mean zero.
type InvestmentsPatch struct {
	Gold   *float64
	FD     *float64
	Stocks *float64
	Crypto *float64
}

// Resolve turns the patch into a full record, defaulting absent holdings to 0.
func (p *InvestmentsPatch) Resolve() Investments {
	return Investments{
		Gold:   valueOrZero(p.Gold),
		FD:     valueOrZero(p.FD),
		Stocks: valueOrZero(p.Stocks),
		Crypto: valueOrZero(p.Crypto),
	}
}

// ProfilePatch carries the top-level fields present in a save payload.
// A nil field was absent and keeps its stored value.
//
// UserClass and CreatedAt are deliberately missing: the former is written only from a
// classifier label and the latter only when the profile is created.
type ProfilePatch struct {
	Name            *string
	Age             *int
	Role            *Role
	Pincode         *string
	MonthlyIncome   *float64
	MonthlySpending *float64
	IsInvestor      *InvestorFlag
	// Investments replaces the stored record as a whole when present.
	Investments  *InvestmentsPatch
	CostOfLiving *float64
}

// NewProfile builds a profile for an unseen email: defaults first, then the patch.
// Name and age stay empty when the first payload omits them.
func NewProfile(email string, patch *ProfilePatch, now time.Time) *Profile {
	profile := &Profile{
		Email:       email,
		Role:        RoleStudent,
		IsInvestor:  InvestorNo,
		Investments: Investments{},
		UserClass:   UserClassUnknown,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	profile.Apply(patch, now)

	return profile
}

// Apply copies every present patch field onto the profile.
func (p *Profile) Apply(patch *ProfilePatch, now time.Time) {
	if patch == nil {
		return
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if patch.Pincode != nil {
		p.Pincode = *patch.Pincode
	}
	if patch.MonthlyIncome != nil {
		p.MonthlyIncome = *patch.MonthlyIncome
	}
	if patch.MonthlySpending != nil {
		p.MonthlySpending = *patch.MonthlySpending
	}
	if patch.IsInvestor != nil {
		p.IsInvestor = *patch.IsInvestor
	}
	if patch.Investments != nil {
		p.Investments = patch.Investments.Resolve()
	}
	if patch.CostOfLiving != nil {
		p.CostOfLiving = *patch.CostOfLiving
	}
	p.UpdatedAt = now
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
