package performance

import (
	"math"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
)

type ScoreCalculator struct {
	weights performance.Weights
}

func NewScoreCalculator(weights performance.Weights) *ScoreCalculator {
	return &ScoreCalculator{weights: weights}
}

// Score grades one day's telemetry against the agent's targets. Each channel
// contributes its attainment ratio capped at 1, weighted by the channel
// weight, so with weights summing to 1 the composite always lands in [0, 1].
// Overshooting a single target never compensates for missing another.
func (c *ScoreCalculator) Score(stat performance.DailyStat, targets performance.Targets) (float64, error) {
	if err := c.validate(stat, targets); err != nil {
		return 0, err
	}

	score := math.Min(float64(stat.Calls)/float64(targets.Calls), 1)*c.weights.Calls +
		math.Min(float64(stat.TalkTimeSeconds)/float64(targets.TalkTimeSeconds), 1)*c.weights.TalkTime +
		math.Min(float64(stat.LeadsApproved)/float64(targets.Leads), 1)*c.weights.Leads

	return score, nil
}

func (c *ScoreCalculator) validate(stat performance.DailyStat, targets performance.Targets) error {
	var errs validator.ValidationErrors

	if targets.Calls <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "calls_target",
			Message: "calls target must be positive",
		})
	}
	if targets.TalkTimeSeconds <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "talk_time_target",
			Message: "talk time target must be positive",
		})
	}
	if targets.Leads <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leads_target",
			Message: "leads target must be positive",
		})
	}

	if stat.Calls < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "calls",
			Message: "calls must not be negative",
		})
	}
	if stat.TalkTimeSeconds < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "talk_time_seconds",
			Message: "talk time must not be negative",
		})
	}
	if stat.LeadsApproved < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leads_approved",
			Message: "leads must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
