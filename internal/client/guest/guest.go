// Package guest derives guest mode from navigation URLs. Guest mode is never
// stored: it lives only in the guest=true query parameter of the current
// location.
package guest

import (
	"net/url"
	"strings"
)

const (
	Param = "guest"
	value = "true"
)

// FromURL reports whether raw carries guest=true. raw may be absolute or a
// bare path with a query; unparseable input is not a guest URL.
func FromURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Query().Get(Param) == value
}

// Preserve returns target with guest=true appended when isGuest is set, so
// that guest mode survives navigation. A target that already carries the
// flag is returned unchanged.
func Preserve(target string, isGuest bool) string {
	if !isGuest || FromURL(target) {
		return target
	}
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set(Param, value)
	u.RawQuery = q.Encode()
	return u.String()
}

// Strip removes the guest flag from target, keeping every other parameter.
func Strip(target string) string {
	u, err := url.Parse(target)
	if err != nil || !strings.Contains(u.RawQuery, Param) {
		return target
	}
	q := u.Query()
	q.Del(Param)
	u.RawQuery = q.Encode()
	return u.String()
}
