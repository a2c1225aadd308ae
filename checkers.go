package fitbit

import (
	"github.com/Xevion/go-fitbit/internal"
	"github.com/Xevion/go-fitbit/internal/paths"
	"github.com/Xevion/go-fitbit/types"
)

const (
	msgBothEndDateAndPeriod = "Both end_date and period specified. Specify only one."
	msgInvalidStartDate     = "Please specify a valid start date."
	msgInvalidEndDate       = "Please specify a valid end date."
	msgPartialTimeWindow    = "Both start_time and end_time must be specified together."
)

func checkStartDate(d types.DateLike) error {
	if internal.IsAbsentDate(d) {
		return internal.InvalidArgument(msgInvalidStartDate)
	}
	return nil
}

func checkEndDate(d types.DateLike) error {
	if internal.IsAbsentDate(d) {
		return internal.InvalidArgument(msgInvalidEndDate)
	}
	return nil
}

func checkEndDateOrPeriod(end types.DateLike, period types.Period) error {
	if !internal.IsAbsentDate(end) && period != "" {
		return internal.InvalidArgument(msgBothEndDateAndPeriod)
	}
	return nil
}

func (c *Client) checkPeriod(p types.Period) error {
	if !c.periods.Contains(string(p)) {
		return internal.InvalidArgumentf("Invalid period: %s. Valid periods are %s.", p, c.periods)
	}
	return nil
}

func (c *Client) checkDetailLevel(d types.DetailLevel) error {
	if d == "" {
		return internal.InvalidArgumentf("Please specify a detail level. Valid detail levels are %s.", c.detailLevels)
	}
	if !c.detailLevels.Contains(string(d)) {
		return internal.InvalidArgumentf("Invalid detail level: %s. Valid detail levels are %s.", d, c.detailLevels)
	}
	return nil
}

// checkTimeWindow returns the formatted window, or nil when neither end is set.
func checkTimeWindow(start, end types.TimeString) (*paths.TimeWindow, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, internal.InvalidArgument(msgPartialTimeWindow)
	}

	st, err := internal.FormatTime(string(start))
	if err != nil {
		return nil, err
	}
	et, err := internal.FormatTime(string(end))
	if err != nil {
		return nil, err
	}
	return &paths.TimeWindow{Start: st, End: et}, nil
}
