package types

// MembershipStatus is the administrative flag set by staff. It is independent
// of date-based expiry; see ExpiryStatus for the temporal axis.
type MembershipStatus string

const (
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusInactive MembershipStatus = "inactive"
)

func (s MembershipStatus) Valid() bool {
	return s == MembershipStatusActive || s == MembershipStatusInactive
}

// ExpiryStatus is derived from end_date at query time and never stored.
type ExpiryStatus string

const (
	ExpiryStatusActive       ExpiryStatus = "active"
	ExpiryStatusExpiringSoon ExpiryStatus = "expiring_soon"
	ExpiryStatusExpired      ExpiryStatus = "expired"
)

// PlanTypeTemplate marks membership rows that act as reusable plan templates
// (customer_id is null on those rows).
const PlanTypeTemplate = "plan"

// Gender values accepted on customer records.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
