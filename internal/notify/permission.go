package notify

// Permission is the user's answer to the reminder permission request.
// Denied is a normal terminal state, not an error.
type Permission string

const (
	PermissionUnasked Permission = "unasked"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Settled reports whether the permission question has been answered.
func (p Permission) Settled() bool {
	return p == PermissionGranted || p == PermissionDenied
}
