package domain

const (
	StatusCreated  = "created"
	StatusBuilding = "building"
	StatusReady    = "ready"
	StatusFailed   = "failed"
	StatusDeleted  = "deleted"
)

// Statuses lists every valid project status in lifecycle order.
var Statuses = []string{StatusCreated, StatusBuilding, StatusReady, StatusFailed, StatusDeleted}

// ValidStatus reports whether s is one of Statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}
