// Package chart turns an account's transactions into a cumulative balance
// series and renders it.
package chart

import (
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoData is returned when the account has no transactions to plot.
var ErrNoData = errors.New("no transactions to chart")

const (
	dateLayout  = "2006-01-02"
	labelLayout = "02 Jan 06"
)

type Entry struct {
	Date      string
	AccountID int64
	Amount    decimal.Decimal
}

type Point struct {
	Date    string
	Balance decimal.Decimal
}

// BalanceSeries keeps the entries of accountID, nets amounts that share a
// date and returns the running total per distinct date in ascending order.
// ISO dates sort chronologically as strings.
func BalanceSeries(entries []Entry, accountID int64) ([]Point, error) {
	daily := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.AccountID != accountID {
			continue
		}
		daily[e.Date] = daily[e.Date].Add(e.Amount)
	}
	if len(daily) == 0 {
		return nil, ErrNoData
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	points := make([]Point, 0, len(dates))
	running := decimal.Zero
	for _, d := range dates {
		running = running.Add(daily[d])
		points = append(points, Point{Date: d, Balance: running})
	}
	return points, nil
}

// Label formats an ISO date for an axis. Anything else is returned as is.
func Label(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(labelLayout)
}
