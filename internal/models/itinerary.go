package models

import (
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/jaychen/travel-planner/pkg/utils"
)

// ItineraryHeaders are the 6 fixed columns of each per-trip sheet.
var ItineraryHeaders = []string{"日期", "開始時間", "結束時間", "活動", "地圖連結", "備註"}

// ItineraryItem is one scheduled activity, one row of the trip's sheet.
type ItineraryItem struct {
	Date      string `json:"日期"`
	StartTime string `json:"開始時間"`
	EndTime   string `json:"結束時間"`
	Activity  string `json:"活動"`
	MapLink   string `json:"地圖連結"`
	Note      string `json:"備註"`
}

// Validate checks the required fields of a new item. End time is not
// required to follow start time; overlapping entries are allowed.
func (it *ItineraryItem) Validate() error {
	if it.Date == "" {
		return fmt.Errorf("date is required")
	}
	if err := utils.ValidateDate(it.Date); err != nil {
		return err
	}
	if it.Activity == "" {
		return fmt.Errorf("activity is required")
	}
	if it.StartTime != "" {
		if err := utils.ValidateClock(it.StartTime); err != nil {
			return err
		}
	}
	if it.EndTime != "" {
		if err := utils.ValidateClock(it.EndTime); err != nil {
			return err
		}
	}
	return nil
}

// DeriveMapLink fills an empty map link with a Google Maps search for the
// activity within the trip's country.
func (it *ItineraryItem) DeriveMapLink(country string) {
	if it.MapLink != "" {
		return
	}
	query := url.QueryEscape(country + " " + it.Activity)
	it.MapLink = "https://www.google.com/maps/search/?api=1&query=" + query
}

// FilterByDate returns the items scheduled on the given date, preserving
// row order.
func FilterByDate(items []ItineraryItem, date string) []ItineraryItem {
	out := make([]ItineraryItem, 0)
	for _, it := range items {
		if it.Date == date {
			out = append(out, it)
		}
	}
	return out
}

// SortByStartTime orders items by parsed start time ascending. Items whose
// start time does not parse as HH:MM sort last, keeping their relative
// order.
func SortByStartTime(items []ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, oki := parseClock(items[i].StartTime)
		tj, okj := parseClock(items[j].StartTime)
		if oki && okj {
			return ti.Before(tj)
		}
		return oki && !okj
	})
}

func parseClock(raw string) (time.Time, bool) {
	t, err := time.Parse(utils.ClockLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
