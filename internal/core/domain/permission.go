package domain

// Capability is a named permission tag. Route guards and service checks
// work on these tags instead of the raw boolean columns.
type Capability string

const (
	CapManageCustomers Capability = "manage_customers"
	CapManageFinancial Capability = "manage_financial"
	CapManageCodes     Capability = "manage_collaboration_codes"
	CapViewCollabStats Capability = "view_collaboration_stats"
	CapManageAccess    Capability = "manage_access"
	CapDeleteUsers     Capability = "delete_users"
)

// AllCapabilities lists every known capability tag
var AllCapabilities = []Capability{
	CapManageCustomers,
	CapManageFinancial,
	CapManageCodes,
	CapViewCollabStats,
	CapManageAccess,
	CapDeleteUsers,
}

// CapabilitySet is the set of capabilities an identity holds
type CapabilitySet map[Capability]bool

// NewCapabilitySet builds a set from capability tags
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

// Has reports whether the set contains the capability
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// HasAll reports whether the set contains every listed capability
func (s CapabilitySet) HasAll(caps ...Capability) bool {
	for _, c := range caps {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// List returns the capabilities as sorted-stable string tags for embedding
// in token claims
func (s CapabilitySet) List() []Capability {
	caps := make([]Capability, 0, len(s))
	for _, c := range AllCapabilities {
		if s.Has(c) {
			caps = append(caps, c)
		}
	}
	return caps
}

// Identity is the authenticated caller as seen by services and route
// guards. The capability set is the snapshot embedded in the access token
// at issue time; flag changes show up after the next refresh or login.
type Identity struct {
	UserID       string
	Email        string
	Capabilities CapabilitySet
}
