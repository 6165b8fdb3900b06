package model

import (
	"strconv"
	"time"
)

// DateRange bounds match start times. Both ends are unix milliseconds and zero means open.
type DateRange struct {
	Start int64 `query:"start" json:"start,omitempty" validate:"gte=0"`
	End   int64 `query:"end" json:"end,omitempty" validate:"gte=0"`
}

func (r DateRange) StartTime() *time.Time {
	if r.Start == 0 {
		return nil
	}
	t := time.UnixMilli(r.Start)
	return &t
}

func (r DateRange) EndTime() *time.Time {
	if r.End == 0 {
		return nil
	}
	t := time.UnixMilli(r.End)
	return &t
}

func (r DateRange) Includes(t time.Time) bool {
	if s := r.StartTime(); s != nil && s.After(t) {
		return false
	}
	if e := r.EndTime(); e != nil && e.Before(t) {
		return false
	}
	return true
}

func (r DateRange) String() string {
	return strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.End, 10)
}
