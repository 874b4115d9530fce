package entity

import (
	"github.com/pkg/errors"
)

// Role describes the occupation bracket a user picked during onboarding.
type Role string

const (
	// RoleStudent is the default role.
	RoleStudent Role = "Student"
	// RoleProfessional indicates a working professional.
	RoleProfessional Role = "Professional"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProfessional:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects values outside the closed set.
func (r *Role) UnmarshalText(text []byte) error {
	role := Role(text)
	if !role.IsValid() {
		return errors.Errorf("invalid role %q", text)
	}
	*r = role

	return nil
}

// InvestorFlag records whether the user already invests.
type InvestorFlag string

const (
	InvestorYes InvestorFlag = "yes"
	InvestorNo  InvestorFlag = "no"
)

// String returns the string representation of the InvestorFlag.
func (f InvestorFlag) String() string {
	return string(f)
}

// IsValid checks if the InvestorFlag is a valid value.
func (f InvestorFlag) IsValid() bool {
	return f == InvestorYes || f == InvestorNo
}

// UnmarshalText rejects values outside the closed set.
func (f *InvestorFlag) UnmarshalText(text []byte) error {
	flag := InvestorFlag(text)
	if !flag.IsValid() {
		return errors.Errorf("invalid isInvestor %q", text)
	}
	*f = flag

	return nil
}

// UserClass is the behavioural label assigned by the classifier.
type UserClass string

const (
	UserClassYOLO     UserClass = "YOLO"
	UserClassSurvivor UserClass = "Survivor"
	UserClassSaver    UserClass = "Saver"
	UserClassInvestor UserClass = "Investor"
	// UserClassUnknown is held until the classifier has answered at least once.
	UserClassUnknown UserClass = "Unknown"
)

// String returns the string representation of the UserClass.
func (c UserClass) String() string {
	return string(c)
}

// IsValid checks if the UserClass is a valid value.
func (c UserClass) IsValid() bool {
	switch c {
	case UserClassYOLO, UserClassSurvivor, UserClassSaver, UserClassInvestor, UserClassUnknown:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects values outside the closed set.
func (c *UserClass) UnmarshalText(text []byte) error {
	class := UserClass(text)
	if !class.IsValid() {
		return errors.Errorf("invalid user class %q", text)
	}
	*c = class

	return nil
}
