package utils

import "time"

const dateLayout = "2006-01-02"

func Today() string {
	return time.Now().Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// AddMonths shifts an ISO date by calendar months.
func AddMonths(date string, months int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, months, 0)), nil
}

// AddDays shifts an ISO date by whole days.
func AddDays(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// InclusiveDays counts the days in [start, end], both ends included.
func InclusiveDays(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// DateRangesOverlap reports whether [aStart,aEnd] and [bStart,bEnd] share at
// least one day. ISO date strings compare lexically in calendar order.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && aEnd >= bStart
}
