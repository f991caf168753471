package provider

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"newtab-feed/internal/domain/entity"
)

const unknownCity = "未知"

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// ParseIPAPI parses an ipapi.co response.
func ParseIPAPI(raw []byte) (entity.Location, bool) {
	var d struct {
		City      string    `json:"city"`
		Latitude  flexFloat `json:"latitude"`
		Longitude flexFloat `json:"longitude"`
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return entity.Location{}, false
	}
	return newLocation(d.City, float64(d.Latitude), float64(d.Longitude))
}

// ParseIPAPICom parses an ip-api.com response.
func ParseIPAPICom(raw []byte) (entity.Location, bool) {
	var d struct {
		City string    `json:"city"`
		Lat  flexFloat `json:"lat"`
		Lon  flexFloat `json:"lon"`
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return entity.Location{}, false
	}
	return newLocation(d.City, float64(d.Lat), float64(d.Lon))
}

func newLocation(city string, lat, lon float64) (entity.Location, bool) {
	if city == "" {
		city = unknownCity
	}
	loc := entity.Location{City: city, Lat: lat, Lon: lon}
	return loc, loc.Valid()
}

// ipapiURL inserts the client IP into an ipapi.co style path (/json/ -> /<ip>/json/).
func ipapiURL(base, ip string) string {
	if ip == "" {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = "/" + url.PathEscape(ip) + "/json/"
	return u.String()
}

// ipapiComURL appends the client IP to an ip-api.com style path (/json/<ip>).
func ipapiComURL(base, ip string) string {
	if ip == "" {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + url.PathEscape(ip)
	return u.String()
}
