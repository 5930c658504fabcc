package models

import (
	"fmt"
	"time"

	"github.com/jaychen/travel-planner/pkg/utils"
)

// IndexSheet is the sheet holding one row per trip.
const IndexSheet = "Index"

// IndexHeaders are the 13 fixed columns of the Index sheet, in order.
var IndexHeaders = []string{
	"名稱", "開始日期", "結束日期", "國家",
	"航班號", "出發機場", "出發時間", "抵達機場", "抵達時間",
	"酒店名稱", "酒店地址", "入住日期", "退房日期",
}

// Countries is the fixed list a trip may be filed under.
var Countries = []string{
	"日本 (Japan)",
	"美國 (USA)",
	"韓國 (South Korea)",
	"台灣 (Taiwan)",
	"泰國 (Thailand)",
}

// Trip is one row of the Index sheet. JSON keys match the column headers
// so API responses mirror the stored layout.
type Trip struct {
	Name             string `json:"名稱"`
	StartDate        string `json:"開始日期"`
	EndDate          string `json:"結束日期"`
	Country          string `json:"國家"`
	FlightNumber     string `json:"航班號"`
	DepartureAirport string `json:"出發機場"`
	DepartureTime    string `json:"出發時間"`
	ArrivalAirport   string `json:"抵達機場"`
	ArrivalTime      string `json:"抵達時間"`
	HotelName        string `json:"酒店名稱"`
	HotelAddress     string `json:"酒店地址"`
	CheckinDate      string `json:"入住日期"`
	CheckoutDate     string `json:"退房日期"`
}

// TripMeta carries the nine flight/hotel columns that can be edited after
// a trip is created. The extractor produces the same shape.
type TripMeta struct {
	FlightNumber     string `json:"航班號"`
	DepartureAirport string `json:"出發機場"`
	DepartureTime    string `json:"出發時間"`
	ArrivalAirport   string `json:"抵達機場"`
	ArrivalTime      string `json:"抵達時間"`
	HotelName        string `json:"酒店名稱"`
	HotelAddress     string `json:"酒店地址"`
	CheckinDate      string `json:"入住日期"`
	CheckoutDate     string `json:"退房日期"`
}

// IsValidCountry reports whether the country is one of the fixed choices.
func IsValidCountry(country string) bool {
	for _, c := range Countries {
		if c == country {
			return true
		}
	}
	return false
}

// ValidateNew checks the creation fields of a trip. Flight and hotel
// columns start empty and are not inspected here.
func (t *Trip) ValidateNew() error {
	if err := utils.ValidateTripName(t.Name); err != nil {
		return err
	}
	if t.StartDate == "" || t.EndDate == "" || t.Country == "" {
		return fmt.Errorf("name, start date, end date and country are required")
	}
	if err := utils.ValidateDate(t.StartDate); err != nil {
		return err
	}
	if err := utils.ValidateDate(t.EndDate); err != nil {
		return err
	}
	start, _ := utils.ParseDate(t.StartDate)
	end, _ := utils.ParseDate(t.EndDate)
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", t.EndDate, t.StartDate)
	}
	if !IsValidCountry(t.Country) {
		return fmt.Errorf("unknown country %q", t.Country)
	}
	return nil
}

// DateRange returns every date of the trip inclusive, as YYYY-MM-DD
// strings. Invalid stored dates yield an empty slice.
func (t *Trip) DateRange() []string {
	start, err := utils.ParseDate(t.StartDate)
	if err != nil {
		return nil
	}
	end, err := utils.ParseDate(t.EndDate)
	if err != nil || end.Before(start) {
		return nil
	}
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(utils.DateLayout))
	}
	return days
}

// ContainsDate reports whether the date falls within the trip range.
func (t *Trip) ContainsDate(date string) bool {
	start, err1 := utils.ParseDate(t.StartDate)
	end, err2 := utils.ParseDate(t.EndDate)
	d, err3 := utils.ParseDate(date)
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// Duration returns the trip length in days, inclusive of both ends.
func (t *Trip) Duration() int {
	start, err1 := utils.ParseDate(t.StartDate)
	end, err2 := utils.ParseDate(t.EndDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
