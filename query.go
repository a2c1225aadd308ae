package fitbit

import (
	"fmt"

	"github.com/Xevion/go-fitbit/types"
)

// From
type timeSeriesQueryBuilder struct {
	options types.TimeSeriesOptions
}

// To, Over, Build
type timeSeriesQueryBuilderFrom struct {
	options types.TimeSeriesOptions
}

// Build
type timeSeriesQueryBuilderEnd struct {
	options types.TimeSeriesOptions
}

// NewTimeSeriesQuery starts a fluent TimeSeriesOptions builder. The start
// date is always set first, then at most one of an end date or a period:
//
//	NewTimeSeriesQuery().From("2018-01-01").Over(types.Period7Days).Build()
func NewTimeSeriesQuery() timeSeriesQueryBuilder {
	return timeSeriesQueryBuilder{}
}

func (b timeSeriesQueryBuilder) From(start types.DateLike) timeSeriesQueryBuilderFrom {
	b.options.StartDate = start
	return timeSeriesQueryBuilderFrom(b)
}

// To selects the date range form.
func (b timeSeriesQueryBuilderFrom) To(end types.DateLike) timeSeriesQueryBuilderEnd {
	b.options.EndDate = end
	return timeSeriesQueryBuilderEnd(b)
}

// Over selects the period form.
func (b timeSeriesQueryBuilderFrom) Over(period types.Period) timeSeriesQueryBuilderEnd {
	b.options.Period = period
	return timeSeriesQueryBuilderEnd(b)
}

// Build leaves both end date and period unset, so the client defaults to "1d".
func (b timeSeriesQueryBuilderFrom) Build() types.TimeSeriesOptions {
	return b.options
}

func (b timeSeriesQueryBuilderEnd) Build() types.TimeSeriesOptions {
	return b.options
}

// From
type intradayQueryBuilder struct {
	options types.IntradayOptions
}

// Detail
type intradayQueryBuilderFrom struct {
	options types.IntradayOptions
}

// To, Between, Build
type intradayQueryBuilderEnd struct {
	options types.IntradayOptions
}

// NewIntradayQuery starts a fluent IntradayOptions builder:
//
//	NewIntradayQuery().From("yesterday").Detail(types.DetailLevel1Min).Between("12:30", "12:45").Build()
func NewIntradayQuery() intradayQueryBuilder {
	return intradayQueryBuilder{}
}

func (b intradayQueryBuilder) From(start types.DateLike) intradayQueryBuilderFrom {
	b.options.StartDate = start
	return intradayQueryBuilderFrom(b)
}

func (b intradayQueryBuilderFrom) Detail(level types.DetailLevel) intradayQueryBuilderEnd {
	b.options.DetailLevel = level
	return intradayQueryBuilderEnd(b)
}

// To extends the request over several days.
func (b intradayQueryBuilderEnd) To(end types.DateLike) intradayQueryBuilderEnd {
	b.options.EndDate = end
	return b
}

// Between takes two TimeStrings ("HH:MM") bounding the samples of each day.
func (b intradayQueryBuilderEnd) Between(start, end types.TimeString) intradayQueryBuilderEnd {
	b.options.StartTime = start
	b.options.EndTime = end
	return b
}

func (b intradayQueryBuilderEnd) Build() types.IntradayOptions {
	return b.options
}

func (b intradayQueryBuilderEnd) String() string {
	o := b.options
	s := fmt.Sprintf("IntradayQuery{ from %v at %s", o.StartDate, o.DetailLevel)
	if o.EndDate != nil {
		s += fmt.Sprintf(" to %v", o.EndDate)
	}
	if o.HasTimeWindow() {
		s += fmt.Sprintf(" between %s and %s", o.StartTime, o.EndTime)
	}
	return s + " }"
}
