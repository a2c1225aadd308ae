package fitbit

import (
	"log/slog"

	"github.com/Xevion/go-fitbit/internal"
	"github.com/Xevion/go-fitbit/internal/paths"
	"github.com/Xevion/go-fitbit/types"
)

// HeartRateSeriesForDateRange returns the daily heart rate summary between two
// dates, inclusive.
func (c *Client) HeartRateSeriesForDateRange(start, end types.DateLike) ([]byte, error) {
	if err := checkStartDate(start); err != nil {
		return nil, err
	}
	if err := checkEndDate(end); err != nil {
		return nil, err
	}

	startDate, err := internal.FormatDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := internal.FormatDate(end)
	if err != nil {
		return nil, err
	}

	return c.get(paths.HeartRateRange(c.userID, startDate, endDate))
}

// HeartRateSeriesForPeriod returns the daily heart rate summary for a period
// ending on start, e.g. "7d".
func (c *Client) HeartRateSeriesForPeriod(start types.DateLike, period types.Period) ([]byte, error) {
	if err := checkStartDate(start); err != nil {
		return nil, err
	}
	if err := c.checkPeriod(period); err != nil {
		return nil, err
	}

	startDate, err := internal.FormatDate(start)
	if err != nil {
		return nil, err
	}

	return c.get(paths.HeartRatePeriod(c.userID, startDate, string(period)))
}

// HeartRateTimeSeries returns the daily heart rate summary selected either by
// EndDate or by Period. When neither is set the period defaults to "1d".
func (c *Client) HeartRateTimeSeries(opts types.TimeSeriesOptions) ([]byte, error) {
	if err := checkEndDateOrPeriod(opts.EndDate, opts.Period); err != nil {
		return nil, err
	}
	if err := checkStartDate(opts.StartDate); err != nil {
		return nil, err
	}

	if !internal.IsAbsentDate(opts.EndDate) {
		return c.HeartRateSeriesForDateRange(opts.StartDate, opts.EndDate)
	}

	period := opts.Period
	if period == "" {
		period = types.DefaultPeriod
	}
	return c.HeartRateSeriesForPeriod(opts.StartDate, period)
}

// IntradayHeartRateTimeSeries returns intraday heart rate samples at the
// requested detail level, optionally bounded by a time-of-day window.
// Without EndDate a single day is requested.
func (c *Client) IntradayHeartRateTimeSeries(opts types.IntradayOptions) ([]byte, error) {
	if err := checkStartDate(opts.StartDate); err != nil {
		return nil, err
	}
	if err := c.checkDetailLevel(opts.DetailLevel); err != nil {
		return nil, err
	}
	window, err := checkTimeWindow(opts.StartTime, opts.EndTime)
	if err != nil {
		return nil, err
	}

	startDate, err := internal.FormatDate(opts.StartDate)
	if err != nil {
		return nil, err
	}
	endDate := ""
	if !internal.IsAbsentDate(opts.EndDate) {
		endDate, err = internal.FormatDate(opts.EndDate)
		if err != nil {
			return nil, err
		}
	}

	return c.get(paths.IntradayHeartRate(c.userID, startDate, endDate, string(opts.DetailLevel), window))
}

// get hands the finished path to the transport and returns its result verbatim.
func (c *Client) get(path string) ([]byte, error) {
	slog.Debug("Requesting heart rate resource", "path", path)
	return c.getter.Get(path)
}
