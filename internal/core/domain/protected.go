package domain

// ProtectedEmails are the founder accounts that can never be deleted,
// regardless of the caller's capability flags.
var ProtectedEmails = []string{
	"gokhan@kampus.com",
	"emre@kampus.com",
}

// IsProtectedEmail reports whether the email belongs to a protected account
func IsProtectedEmail(email string) bool {
	for _, protected := range ProtectedEmails {
		if email == protected {
			return true
		}
	}
	return false
}
