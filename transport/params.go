package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/muhammadheryan/inventory/constant"
	utilsContext "github.com/muhammadheryan/inventory/utils/context"
	"github.com/muhammadheryan/inventory/utils/errors"
)

const dateOnly = "2006-01-02"

// parseDate accepts RFC3339 or YYYY-MM-DD. A date-only end bound covers the whole day.
func parseDate(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, value)
	if err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "invalid date "+value+", expected RFC3339 or YYYY-MM-DD")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func parseDateRange(r *http.Request) (*time.Time, *time.Time, error) {
	q := r.URL.Query()
	start, err := parseDate(q.Get("start_date"), false)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseDate(q.Get("end_date"), true)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// queryInt returns 0 for a missing or malformed value so the application default applies.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

func merchantID(r *http.Request) (string, error) {
	id, ok := utilsContext.GetMerchantID(r.Context())
	if !ok {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}
