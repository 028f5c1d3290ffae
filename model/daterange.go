// Copyright 2024 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package model

import (
	"time"

	"github.com/pkg/errors"

	"github.com/haulwise/console/utils"
)

// DateRange is one of the relative creation-date buckets offered by the
// list filters.
type DateRange string

const (
	DateRangeToday      DateRange = "today"
	DateRangeYesterday  DateRange = "yesterday"
	DateRangeLast7Days  DateRange = "last7days"
	DateRangeLast30Days DateRange = "last30days"
	DateRangeLast90Days DateRange = "last90days"
)

var ErrUnknownDateRange = errors.New("unknown date range")

// DateRanges lists every recognized token, in display order.
var DateRanges = []interface{}{
	string(DateRangeToday),
	string(DateRangeYesterday),
	string(DateRangeLast7Days),
	string(DateRangeLast30Days),
	string(DateRangeLast90Days),
}

func ParseDateRange(s string) (DateRange, error) {
	switch r := DateRange(s); r {
	case DateRangeToday, DateRangeYesterday,
		DateRangeLast7Days, DateRangeLast30Days, DateRangeLast90Days:
		return r, nil
	}
	return "", errors.Wrapf(ErrUnknownDateRange, "%q", s)
}

// Interval resolves the bucket relative to now. Only "yesterday" has an
// upper bound; for the other buckets end is the zero time and bounded is
// false.
func (r DateRange) Interval(now time.Time) (start, end time.Time, bounded bool) {
	midnight := utils.TruncateToDay(now)
	switch r {
	case DateRangeToday:
		return midnight, time.Time{}, false
	case DateRangeYesterday:
		return midnight.AddDate(0, 0, -1), midnight, true
	case DateRangeLast7Days:
		return now.AddDate(0, 0, -7), time.Time{}, false
	case DateRangeLast30Days:
		return now.AddDate(0, 0, -30), time.Time{}, false
	case DateRangeLast90Days:
		return now.AddDate(0, 0, -90), time.Time{}, false
	}
	return time.Time{}, time.Time{}, false
}
