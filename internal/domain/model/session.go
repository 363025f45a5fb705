package model

// AdminSession carries the shared moderation secret for a single request.
// The gateway forwards it to the backend and never stores it; logout is a
// client-side act of forgetting the secret.
type AdminSession struct {
	Secret string
}
