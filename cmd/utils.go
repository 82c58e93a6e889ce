package main

import (
	"regexp"
	"strconv"

	"github.com/kartiksharma/portfolio/internal/validator"
)

var slugRX = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func checkEmail(v *validator.Validator, email string) {
	v.CheckNotBlank(email, "email", "must be provided")
	v.CheckEmail(email, "must be a valid email address")
}

// checkBoolString accepts the wire representation of booleans: the
// literal strings "true" and "false", or empty (the default applies).
func checkBoolString(v *validator.Validator, value, key string) {
	if value == "" {
		return
	}
	v.Check(value == "true" || value == "false", key, `must be "true" or "false"`)
}

// checkOrderString accepts a string-encoded integer, or empty (defaults
// to "0").
func checkOrderString(v *validator.Validator, value, key string) {
	if value == "" {
		return
	}
	_, err := strconv.Atoi(value)
	v.Check(err == nil, key, "must be a string-encoded integer")
}

func checkSlug(v *validator.Validator, slug string) {
	v.CheckNotBlank(slug, "slug", "must be provided")
	if slug != "" {
		v.Check(slugRX.MatchString(slug), "slug", "must contain only lowercase letters, digits and hyphens")
	}
}
