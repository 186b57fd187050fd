package models

// UserType defines the account kind
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeEmployer   UserType = "employer"
	UserTypeAdmin      UserType = "admin"
)

// IsValid reports whether t is a known user type
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeIndividual, UserTypeEmployer, UserTypeAdmin:
		return true
	}
	return false
}

// OpportunityType is the kind of listing
type OpportunityType string

const (
	OpportunityTypeJob       OpportunityType = "job"
	OpportunityTypeTraining  OpportunityType = "training"
	OpportunityTypeVolunteer OpportunityType = "volunteer"
)

// OpportunityTypes lists every opportunity type in display order
var OpportunityTypes = []OpportunityType{OpportunityTypeJob, OpportunityTypeTraining, OpportunityTypeVolunteer}

func (t OpportunityType) IsValid() bool {
	switch t {
	case OpportunityTypeJob, OpportunityTypeTraining, OpportunityTypeVolunteer:
		return true
	}
	return false
}

// OpportunityStatus is the moderation state of a listing
type OpportunityStatus string

const (
	OpportunityStatusPending  OpportunityStatus = "pending"
	OpportunityStatusApproved OpportunityStatus = "approved"
	OpportunityStatusRejected OpportunityStatus = "rejected"
	OpportunityStatusExpired  OpportunityStatus = "expired"
)

func (s OpportunityStatus) IsValid() bool {
	switch s {
	case OpportunityStatusPending, OpportunityStatusApproved, OpportunityStatusRejected, OpportunityStatusExpired:
		return true
	}
	return false
}

// moderationTransitions lists the allowed next states for each status.
// Expired listings are terminal.
var moderationTransitions = map[OpportunityStatus][]OpportunityStatus{
	OpportunityStatusPending:  {OpportunityStatusApproved, OpportunityStatusRejected},
	OpportunityStatusApproved: {OpportunityStatusExpired, OpportunityStatusRejected},
	OpportunityStatusRejected: {OpportunityStatusPending},
}

// CanTransitionTo reports whether a moderator may move a listing from s to next
func (s OpportunityStatus) CanTransitionTo(next OpportunityStatus) bool {
	for _, allowed := range moderationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ApplicationStatus tracks an application through the employer's review
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// Province is one of the fourteen Syrian governorates
type Province string

const (
	ProvinceDamascus   Province = "damascus"
	ProvinceAleppo     Province = "aleppo"
	ProvinceHoms       Province = "homs"
	ProvinceHama       Province = "hama"
	ProvinceLatakia    Province = "latakia"
	ProvinceTartus     Province = "tartus"
	ProvinceDeirEzZor  Province = "deir_ez_zor"
	ProvinceRaqqa      Province = "raqqa"
	ProvinceHasakah    Province = "hasakah"
	ProvinceDaraa      Province = "daraa"
	ProvinceSuwayda    Province = "suwayda"
	ProvinceQuneitra   Province = "quneitra"
	ProvinceIdlib      Province = "idlib"
	ProvinceRifDimashq Province = "rif_dimashq"
)

// Provinces lists all provinces in their canonical order
var Provinces = []Province{
	ProvinceDamascus, ProvinceAleppo, ProvinceHoms, ProvinceHama, ProvinceLatakia,
	ProvinceTartus, ProvinceDeirEzZor, ProvinceRaqqa, ProvinceHasakah, ProvinceDaraa,
	ProvinceSuwayda, ProvinceQuneitra, ProvinceIdlib, ProvinceRifDimashq,
}

func (p Province) IsValid() bool {
	for _, known := range Provinces {
		if p == known {
			return true
		}
	}
	return false
}
