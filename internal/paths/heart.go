// Package paths holds the Fitbit heart rate resource path templates.
// Every function expects already formatted dates, times and tokens.
package paths

import "fmt"

// IntradaySingleDay is used in place of an end date for single-day intraday requests.
const IntradaySingleDay = "1d"

// TimeWindow is a formatted HH:MM time-of-day window.
type TimeWindow struct {
	Start string
	End   string
}

func heartDate(userID, start string) string {
	return fmt.Sprintf("user/%s/activities/heart/date/%s", userID, start)
}

// HeartRateRange builds user/{id}/activities/heart/date/{start}/{end}.json
func HeartRateRange(userID, start, end string) string {
	return fmt.Sprintf("%s/%s.json", heartDate(userID, start), end)
}

// HeartRatePeriod builds user/{id}/activities/heart/date/{start}/{period}.json
func HeartRatePeriod(userID, start, period string) string {
	return fmt.Sprintf("%s/%s.json", heartDate(userID, start), period)
}

// IntradayHeartRate builds one of the four intraday templates. An empty end
// selects the single-day form and a nil window omits the /time/ segment.
func IntradayHeartRate(userID, start, end, detail string, window *TimeWindow) string {
	if end == "" {
		end = IntradaySingleDay
	}
	p := fmt.Sprintf("%s/%s/%s", heartDate(userID, start), end, detail)
	if window != nil {
		p = fmt.Sprintf("%s/time/%s/%s", p, window.Start, window.End)
	}
	return p + ".json"
}
