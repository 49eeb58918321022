// Package validation checks booking and hotel payloads and reports every
// failing field at once.
package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
)

// DateLayout is the only accepted date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Field error messages.
const (
	MsgRequired           = "This field is required"
	MsgHotelNotFound      = "No hotels found with the given id"
	MsgInvalidDate        = "Incorrect data format, should be YYYY-MM-DD"
	MsgInvalidRoom        = "Select a value between 1 to 3"
	MsgInvalidSmoking     = "Value should be either true or false"
	MsgInvalidCard        = "Invalid credit card number"
	MsgInvalidNightlyRate = "Invalid nightly rate"
	MsgInvalidText        = "Not a valid string"
)

// MaxLengths caps text fields at the width of their columns.
var MaxLengths = map[string]int{
	"username":           60,
	"realname":           50,
	"name":               100,
	"address":            200,
	"city":               50,
	"state":              50,
	"country":            100,
	"zipcode":            15,
	"credit_card_number": 19,
	"credit_card_name":   30,
}

// MsgTooLong is the field error for text longer than max characters.
func MsgTooLong(max int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters", max)
}

// TooLong reports the field error when text exceeds the limit for field.
// Fields without a limit never fail.
func TooLong(field, text string) (string, bool) {
	max, ok := MaxLengths[field]
	if !ok || utf8.RuneCountInString(text) <= max {
		return "", false
	}
	return MsgTooLong(max), true
}

// ErrInvalidFormat is returned by ValidateDate for text that is not a YYYY-MM-DD calendar date.
var ErrInvalidFormat = errors.New(MsgInvalidDate)

// BookingFields lists the fields required to create a booking.
var BookingFields = []string{
	"hotel_id",
	"check_in",
	"check_out",
	"room_preference",
	"smoking_preference",
	"credit_card_number",
	"credit_card_name",
	"credit_card_expiry",
}

// HotelFields lists the fields required to create a hotel.
var HotelFields = []string{
	"name",
	"address",
	"city",
	"state",
	"country",
	"zipcode",
	"nightly_rate",
	"description",
}

// FieldErrors maps a payload field to a human readable failure.
type FieldErrors map[string]string

// Error implements error so a FieldErrors value can travel through error returns.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

//go:generate mockgen -source=validation.go -destination=validation_mock.go -package=validation

// HotelFinder looks a hotel up by id. A missing hotel is reported as nil, nil.
type HotelFinder interface {
	Get(ctx context.Context, id int64) (*models.HotelDB, error)
}

// ValidateDate checks that text is a real calendar date in YYYY-MM-DD form.
func ValidateDate(text string) error {
	if _, err := time.Parse(DateLayout, text); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// ValidateCreditCard runs the Luhn checksum over a string of digits.
func ValidateCreditCard(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	for i := 0; i < len(number); i++ {
		c := number[len(number)-1-i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// ValidateBooking checks a booking payload. The returned error is non-nil only
// when the hotel lookup itself fails.
func ValidateBooking(ctx context.Context, payload map[string]any, hotels HotelFinder) (FieldErrors, error) {
	errs := requireFields(payload, BookingFields)

	if _, missing := errs["hotel_id"]; !missing {
		id, ok := AsInt64(payload["hotel_id"])
		if !ok {
			errs["hotel_id"] = MsgHotelNotFound
		} else {
			hotel, err := hotels.Get(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("lookup hotel %d: %w", id, err)
			}
			if hotel == nil {
				errs["hotel_id"] = MsgHotelNotFound
			}
		}
	}

	for _, field := range []string{"check_in", "check_out", "credit_card_expiry"} {
		if _, missing := errs[field]; missing {
			continue
		}
		text, ok := payload[field].(string)
		if !ok || ValidateDate(text) != nil {
			errs[field] = MsgInvalidDate
		}
	}

	if _, missing := errs["room_preference"]; !missing {
		if _, ok := RoomPreference(payload["room_preference"]); !ok {
			errs["room_preference"] = MsgInvalidRoom
		}
	}

	if _, missing := errs["smoking_preference"]; !missing {
		if _, ok := payload["smoking_preference"].(bool); !ok {
			errs["smoking_preference"] = MsgInvalidSmoking
		}
	}

	if _, missing := errs["credit_card_number"]; !missing {
		number, ok := AsString(payload["credit_card_number"])
		if !ok || !ValidateCreditCard(number) {
			errs["credit_card_number"] = MsgInvalidCard
		} else if msg, long := TooLong("credit_card_number", number); long {
			errs["credit_card_number"] = msg
		}
	}

	checkText(errs, payload, "credit_card_name", false)

	return errs, nil
}

// ValidateHotel checks a hotel payload.
func ValidateHotel(payload map[string]any) FieldErrors {
	errs := requireFields(payload, HotelFields)

	for _, field := range []string{"name", "address", "city", "state", "country", "description"} {
		checkText(errs, payload, field, false)
	}
	checkText(errs, payload, "zipcode", true)

	if _, missing := errs["nightly_rate"]; !missing {
		if _, ok := NightlyRate(payload["nightly_rate"]); !ok {
			errs["nightly_rate"] = MsgInvalidNightlyRate
		}
	}

	return errs
}

// RoomPreference converts one of the strings "1", "2" or "3" into a room preference.
func RoomPreference(v any) (int, bool) {
	val, ok := v.(string)
	if !ok || len(val) != 1 {
		return 0, false
	}
	n := int(val[0]) - '0'
	if n < models.RoomPreferenceMin || n > models.RoomPreferenceMax {
		return 0, false
	}
	return n, true
}

// NightlyRate parses a positive nightly rate from a number or numeric string.
func NightlyRate(v any) (float64, bool) {
	var (
		rate float64
		err  error
	)
	switch val := v.(type) {
	case float64:
		rate = val
	case json.Number:
		rate, err = val.Float64()
	case string:
		rate, err = strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// AsString returns strings as is and renders numbers without exponent.
func AsString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}

// AsInt64 converts integral numbers and numeric strings to int64.
func AsInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case float64:
		if val != float64(int64(val)) {
			return 0, false
		}
		return int64(val), true
	case json.Number:
		i, err := val.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func requireFields(payload map[string]any, fields []string) FieldErrors {
	errs := FieldErrors{}
	for _, field := range fields {
		if !present(payload[field]) {
			errs[field] = MsgRequired
		}
	}
	return errs
}

// present treats nil, blank strings and empty objects or arrays as missing;
// false and 0 are values.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}

// checkText requires a present field to hold a string that fits its column.
// numeric also admits JSON numbers, for values such as zip codes.
func checkText(errs FieldErrors, payload map[string]any, field string, numeric bool) {
	if _, failed := errs[field]; failed {
		return
	}

	var text string
	switch val := payload[field].(type) {
	case string:
		text = val
	case json.Number, float64:
		if !numeric {
			errs[field] = MsgInvalidText
			return
		}
		text, _ = AsString(val)
	default:
		errs[field] = MsgInvalidText
		return
	}

	if msg, long := TooLong(field, strings.TrimSpace(text)); long {
		errs[field] = msg
	}
}
