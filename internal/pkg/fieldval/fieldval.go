// Package fieldval is the hand-rolled field validation library guarding every
// controller input before it reaches storage.
//
// Every validator follows the same contract: it receives the field value (a
// pointer, so an omitted JSON key arrives as nil), any range constraints, the
// human-readable field name used in messages, and whether the field is
// required. A nil pointer or empty string counts as "empty": required fields
// fail with a 400, optional fields pass untouched. Present values are then
// checked for shape and range. All validators are pure; the first failure in a
// controller's validation sequence short-circuits the request.
package fieldval

import (
	"fmt"
	"math"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
)

var (
	// namePattern allows letter groups joined by a single ' . , - or space,
	// with no leading, trailing or doubled separator.
	namePattern = regexp.MustCompile(`^[A-Za-z]+(?:[' .,-][A-Za-z]+)*$`)

	// emailPattern is deliberately permissive: local@domain.tld with no
	// whitespace or extra @ in either part.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

	// urlPattern captures the host so private IPv4 literals can be rejected
	// separately. Scheme, port and path are optional.
	urlPattern  = regexp.MustCompile(`^(?:(?:https?|ftp)://)?([A-Za-z0-9.-]+)(?::[0-9]{1,5})?(?:/[^\s]*)?$`)
	hostPattern = regexp.MustCompile(`^(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`)
)

// dateLayouts are the formats accepted for date fields, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func emptyError(fieldName string) *apperrors.Error {
	return apperrors.NewBadRequest(fieldName + " field cannot be empty")
}

func invalidError(fieldName string) *apperrors.Error {
	return apperrors.NewBadRequest("Invalid " + fieldName)
}

// String validates a free-form string field against an inclusive length range.
func String(value *string, minLen, maxLen int, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if len(*value) < minLen {
		return apperrors.NewBadRequest(fmt.Sprintf("%s must contain at least %d characters", fieldName, minLen))
	}
	if len(*value) > maxLen {
		return apperrors.NewBadRequest(fmt.Sprintf("%s must not exceed %d characters", fieldName, maxLen))
	}
	return nil
}

// Number validates a numeric field against an inclusive [lower, upper] range.
func Number(value *float64, lower, upper float64, fieldName string, required bool) error {
	if value == nil {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		return apperrors.NewBadRequest(fieldName + " must be of type number")
	}
	if *value < lower || *value > upper {
		return invalidError(fieldName)
	}
	return nil
}

// Int validates an integer field against an inclusive [lower, upper] range.
func Int(value *int, lower, upper int, fieldName string, required bool) error {
	if value == nil {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if *value < lower || *value > upper {
		return invalidError(fieldName)
	}
	return nil
}

// Boolean validates that a boolean field is present when required. The type
// itself is guaranteed by JSON binding.
func Boolean(value *bool, fieldName string, required bool) error {
	if value == nil && required {
		return emptyError(fieldName)
	}
	return nil
}

// Date validates that the value parses to a calendar date.
func Date(value *string, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if _, err := ParseDate(*value); err != nil {
		return apperrors.NewBadRequest(fieldName + " must be a valid date")
	}
	return nil
}

// ParseDate parses a date field value using the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

// DateOfBirth validates a date of birth: a valid date lying at least
// minimumAge years in the past.
func DateOfBirth(value *string, minimumAge int, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	dob, err := ParseDate(*value)
	if err != nil {
		return apperrors.NewBadRequest(fieldName + " must be a valid date")
	}
	if dob.AddDate(minimumAge, 0, 0).After(time.Now()) {
		return invalidError(fieldName)
	}
	return nil
}

// Name validates a person's name: at most 30 characters of letter groups
// joined by single separators.
func Name(value *string, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if len(*value) > 30 || !namePattern.MatchString(*value) {
		return invalidError(fieldName)
	}
	return nil
}

// Email validates an email address, at most 100 characters.
func Email(value *string, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if len(*value) > 100 || !emailPattern.MatchString(*value) {
		return invalidError(fieldName)
	}
	return nil
}

// Phone validates a ten digit phone number.
func Phone(value *string, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if !phonePattern.MatchString(*value) {
		return invalidError(fieldName)
	}
	return nil
}

// Password validates a password: 6 to 50 characters.
func Password(value *string, fieldName string, required bool) error {
	return String(value, 6, 50, fieldName, required)
}

// ObjectID validates a storage key: a 24 character hexadecimal string.
func ObjectID(value *string, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if !objectIDPattern.MatchString(*value) {
		return invalidError(fieldName)
	}
	return nil
}

// Gender validates membership of the gender allow-list.
func Gender(value *string, fieldName string, required bool) error {
	return member(value, models.Genders, fieldName, required)
}

// Branch validates membership of the branch allow-list.
func Branch(value *string, fieldName string, required bool) error {
	return member(value, models.Branches, fieldName, required)
}

func member(value *string, allowed []string, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	for _, a := range allowed {
		if *value == a {
			return nil
		}
	}
	return apperrors.NewBadRequest(fmt.Sprintf("%s must be one of %s", fieldName, strings.Join(allowed, ", ")))
}

// PassOutYear validates a graduation year.
func PassOutYear(value *int, fieldName string, required bool) error {
	if value == nil {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if *value < 2000 || *value > 2100 {
		return invalidError(fieldName)
	}
	return nil
}

// URL validates a general URL of at most 500 characters: optional scheme,
// a hostname or public IPv4 literal, optional port and path. Private and
// loopback IPv4 ranges are rejected.
func URL(value *string, fieldName string, required bool) error {
	if value == nil || *value == "" {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if len(*value) > 500 {
		return apperrors.NewBadRequest(fieldName + " must not exceed 500 characters")
	}
	match := urlPattern.FindStringSubmatch(*value)
	if match == nil {
		return invalidError(fieldName)
	}
	host := match[1]
	if hostPattern.MatchString(host) {
		return nil
	}
	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return invalidError(fieldName)
	}
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
		return invalidError(fieldName)
	}
	return nil
}
