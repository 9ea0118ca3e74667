package password

import "context"

//go:generate mockgen -package mockpassword -source=interface.go -destination=mock/mockpassword.go *
type Checker interface {
	// ExposureCount reports how many times the password appears in the public
	// breach corpus. Provider failures degrade to 0 instead of surfacing; a
	// non-nil error only indicates the caller's context was cancelled.
	ExposureCount(ctx context.Context, password string) (int64, error)
}
