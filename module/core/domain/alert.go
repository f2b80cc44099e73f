package domain

// Notification is the per-recipient alert payload handed to the
// outbound notifier. Built and consumed within one dispatch call.
type Notification struct {
	Recipient      string
	ChannelA       float64
	ChannelB       float64
	DistanceKm     float64
	ElapsedMinutes float64
}

// AlertEvent mirrors a dispatched notification on the event bus.
type AlertEvent struct {
	Recipient      string    `json:"recipient"`
	Channels       []Channel `json:"channels"`
	ChannelA       float64   `json:"channel_a"`
	ChannelB       float64   `json:"channel_b"`
	DistanceKm     float64   `json:"distance_km"`
	ElapsedMinutes float64   `json:"elapsed_minutes"`
	Timestamp      int64     `json:"timestamp"`
}
