package model

// DateFilterKind discriminates the date-range variants of a review filter.
type DateFilterKind int

const (
	DateAllTime DateFilterKind = iota
	DateToday
	DateCustomRange
)

// DateFilter is the active date constraint. Start/End are epoch millis and
// only meaningful for DateCustomRange.
type DateFilter struct {
	Kind  DateFilterKind
	Start int64
	End   int64
}

// AllTime matches every timestamp.
func AllTime() DateFilter { return DateFilter{Kind: DateAllTime} }

// Today matches timestamps within the last 24 hours.
func Today() DateFilter { return DateFilter{Kind: DateToday} }

// CustomRange matches timestamps within [start, end], inclusive on both ends.
func CustomRange(start, end int64) DateFilter {
	return DateFilter{Kind: DateCustomRange, Start: start, End: end}
}

const dayMillis = 24 * 60 * 60 * 1000

// Matches reports whether a timestamp passes the filter, evaluated at now.
func (f DateFilter) Matches(ts, now int64) bool {
	switch f.Kind {
	case DateToday:
		return now-ts < dayMillis
	case DateCustomRange:
		return ts >= f.Start && ts <= f.End
	default:
		return true
	}
}

// FilterState is the full review-filter configuration. Empty sets and an
// empty search string mean "unconstrained". The whole value is replaced on
// each user edit.
type FilterState struct {
	Search    string
	Date      DateFilter
	Languages map[string]bool // display codes, e.g. "FR"
	Locations map[string]bool
}

// Unconstrained reports whether the state filters nothing out.
func (s FilterState) Unconstrained() bool {
	return s.Search == "" && s.Date.Kind == DateAllTime &&
		len(s.Languages) == 0 && len(s.Locations) == 0
}
