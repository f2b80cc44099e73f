package service

import "github.com/D-J-M-Rohit/Air-Pro/module/core/domain"

// ThresholdEvaluator decides which pollutant channels of a reading
// exceed their configured limits.
type ThresholdEvaluator struct {
	channelALimit float64
	channelBLimit float64
}

func NewThresholdEvaluator(channelALimit, channelBLimit float64) *ThresholdEvaluator {
	return &ThresholdEvaluator{
		channelALimit: channelALimit,
		channelBLimit: channelBLimit,
	}
}

// Evaluate returns the channels whose value is strictly above its
// limit. A reading sitting exactly on a limit is not a breach.
func (e *ThresholdEvaluator) Evaluate(r *domain.Reading) []domain.Channel {
	var breached []domain.Channel
	if r.ChannelA > e.channelALimit {
		breached = append(breached, domain.ChannelA)
	}
	if r.ChannelB > e.channelBLimit {
		breached = append(breached, domain.ChannelB)
	}
	return breached
}
