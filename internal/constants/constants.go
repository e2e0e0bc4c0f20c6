package constants

// Context keys
const (
	ContextKeyUser   = "current_user"
	ContextKeyClaims = "token_claims"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Authentication
const (
	MinPasswordLength = 8
	TokenTypeBearer   = "bearer"
	AuthHeaderPrefix  = "Bearer "
)

// Announcements
const (
	AnnouncementMembershipChanged = "The collaborators of a project have been modified"
	MembershipActionAdded         = "added"
	MembershipActionRemoved       = "eliminated"
)
