package binder

import (
	"net/url"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/stagebook/stagebook/pkg/models"
)

var phoneRE = regexp.MustCompile(`^\+?[0-9(][0-9()\-. ]{5,18}[0-9]$`)

// startTimeValidator accepts anything models.ParseStartTime can read. Pair it
// with `required` since the empty string is let through.
func startTimeValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseStartTime(value)
	return err == nil
}

// urlValidator accepts the empty string or an absolute http(s) URL.
func urlValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// phoneValidator accepts the empty string or a loosely formatted phone number
// such as 123-123-1234, (415) 555-0100 or +1 415 555 0100.
func phoneValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phoneRE.MatchString(value)
}
