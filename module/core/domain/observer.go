package domain

import "time"

// Observer is a registered user as stored in the observer directory.
// Columns that may be NULL come back as nil pointers; latitude and
// longitude are kept as the decimal-degree strings the clients report.
type Observer struct {
	Identity   string
	Email      *string
	Lat        *string
	Lon        *string
	ReportedAt *time.Time
	Subscribed bool
}

// HasPosition reports whether the observer carries a usable position
// and report time.
func (o *Observer) HasPosition() bool {
	return o.Lat != nil && o.Lon != nil && o.ReportedAt != nil
}
