package types

// DateLike is a calendar date given as a time.Time, *time.Time, *carbon.Carbon,
// or a string such as "2018-01-01", "today" or "yesterday".
// nil, "" and the zero time are treated as absent.
type DateLike = any

// TimeString is a 24-hr format time "HH:MM" such as "07:30".
type TimeString string

// Period is a relative lookback window used instead of an explicit end date.
type Period string

const (
	Period1Day   Period = "1d"
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period1Week  Period = "1w"
	Period1Month Period = "1m"
)

// DefaultPeriod is used by time series queries that set neither an end date nor a period.
const DefaultPeriod = Period1Day

// HRPeriods is the default allow-list of heart rate periods, in the order
// they are reported in error messages.
var HRPeriods = []Period{Period1Day, Period7Days, Period30Days, Period1Week, Period1Month}

// DetailLevel is the sampling granularity of intraday data.
type DetailLevel string

const (
	DetailLevel1Sec DetailLevel = "1sec"
	DetailLevel1Min DetailLevel = "1min"
)

// HRDetailLevels is the default allow-list of intraday heart rate detail levels.
var HRDetailLevels = []DetailLevel{DetailLevel1Sec, DetailLevel1Min}
