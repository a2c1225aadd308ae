package types

// TimeSeriesOptions selects a heart rate time series either by date range or by period.
type TimeSeriesOptions struct {
	// Required
	StartDate DateLike

	// Optional
	// Mutually exclusive with Period.
	EndDate DateLike

	// Optional
	// Mutually exclusive with EndDate. Defaults to "1d" when neither is set.
	Period Period
}

// IntradayOptions selects intraday heart rate data for a day or a range of days,
// optionally bounded by a time-of-day window.
type IntradayOptions struct {
	// Required
	StartDate DateLike

	// Optional
	// When absent a single day ("1d") is requested.
	EndDate DateLike

	// Required
	// One of the client's detail levels, e.g. "1sec" or "1min".
	DetailLevel DetailLevel

	// Optional
	// StartTime and EndTime must be set together.
	StartTime TimeString
	EndTime   TimeString
}

// HasTimeWindow reports whether both ends of the time-of-day window are set.
func (o IntradayOptions) HasTimeWindow() bool {
	return o.StartTime != "" && o.EndTime != ""
}
