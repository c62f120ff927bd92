// Package schedule splits shows into past and upcoming relative to a reference instant.
//
// Two boundary rules exist. Detail pages and the venue directory treat a show that starts
// exactly at the reference instant as upcoming (IsUpcomingInclusive); name search only
// counts shows that start strictly later (IsUpcomingStrict). Keep them distinct until both
// pages agree on one rule.
package schedule

import "time"

// Scheduled is anything with an optional start time. A nil start means unscheduled.
type Scheduled interface {
	Start() *time.Time
}

// Result holds the two buckets in input order.
type Result[T Scheduled] struct {
	Past        []T
	Upcoming    []T
	Unscheduled int
}

func (r Result[T]) PastCount() int {
	return len(r.Past)
}

func (r Result[T]) UpcomingCount() int {
	return len(r.Upcoming)
}

// IsUpcomingInclusive reports start >= ref.
func IsUpcomingInclusive(ref, start time.Time) bool {
	return !start.Before(ref)
}

// IsUpcomingStrict reports start > ref.
func IsUpcomingStrict(ref, start time.Time) bool {
	return start.After(ref)
}

// Partition puts every show with a start time in exactly one bucket. Shows without a start
// time are counted in Unscheduled and left out of both buckets.
func Partition[T Scheduled](ref time.Time, shows []T) Result[T] {
	res := Result[T]{
		Past:     make([]T, 0),
		Upcoming: make([]T, 0),
	}
	for _, s := range shows {
		start := s.Start()
		if start == nil {
			res.Unscheduled++
			continue
		}
		if IsUpcomingInclusive(ref, *start) {
			res.Upcoming = append(res.Upcoming, s)
		} else {
			res.Past = append(res.Past, s)
		}
	}
	return res
}

// CountUpcoming is Partition(ref, shows).UpcomingCount() without building the buckets.
func CountUpcoming[T Scheduled](ref time.Time, shows []T) int {
	n := 0
	for _, s := range shows {
		if start := s.Start(); start != nil && IsUpcomingInclusive(ref, *start) {
			n++
		}
	}
	return n
}
