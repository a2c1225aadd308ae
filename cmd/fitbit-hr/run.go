package main

import (
	"fmt"

	"github.com/Xevion/go-fitbit/types"
)

type query struct {
	start     string
	end       string
	period    string
	detail    string
	startTime string
	endTime   string
}

// heartRateClient is the part of *fitbit.Client the CLI drives.
type heartRateClient interface {
	HeartRateSeriesForDateRange(start, end types.DateLike) ([]byte, error)
	HeartRateSeriesForPeriod(start types.DateLike, period types.Period) ([]byte, error)
	HeartRateTimeSeries(opts types.TimeSeriesOptions) ([]byte, error)
	IntradayHeartRateTimeSeries(opts types.IntradayOptions) ([]byte, error)
}

// optionalDate keeps empty flags absent instead of passing "".
func optionalDate(s string) types.DateLike {
	if s == "" {
		return nil
	}
	return s
}

func run(client heartRateClient, command string, q query) ([]byte, error) {
	switch command {
	case "range":
		return client.HeartRateSeriesForDateRange(optionalDate(q.start), optionalDate(q.end))
	case "period":
		return client.HeartRateSeriesForPeriod(optionalDate(q.start), types.Period(q.period))
	case "series", "":
		return client.HeartRateTimeSeries(types.TimeSeriesOptions{
			StartDate: optionalDate(q.start),
			EndDate:   optionalDate(q.end),
			Period:    types.Period(q.period),
		})
	case "intraday":
		return client.IntradayHeartRateTimeSeries(types.IntradayOptions{
			StartDate:   optionalDate(q.start),
			EndDate:     optionalDate(q.end),
			DetailLevel: types.DetailLevel(q.detail),
			StartTime:   types.TimeString(q.startTime),
			EndTime:     types.TimeString(q.endTime),
		})
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}
