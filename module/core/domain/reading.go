package domain

// Reading is one sample from the sensor feed. It lives for a single
// poll cycle and is never persisted.
type Reading struct {
	ChannelA float64
	ChannelB float64
}

type Channel string

const (
	ChannelA Channel = "channel_a"
	ChannelB Channel = "channel_b"
)
