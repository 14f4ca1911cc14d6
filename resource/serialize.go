// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Serializer turns an outbound payload into a request entity body.  A nil slice means
// that no body is sent.  A non-nil, empty slice sends an empty body.
type Serializer func(interface{}) ([]byte, error)

// Unserializer turns a response entity body into the value a far reference resolves to.
// A nil slice represents the absence of a body.
type Unserializer func([]byte) (interface{}, error)

// DefaultSerialize passes nil through as "no body" and coerces every other value into its
// string form.
func DefaultSerialize(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		s = fmt.Sprint(v)
	}

	return []byte(s), nil
}

// DefaultUnserialize returns the text of the body, or nil if there is no body.
func DefaultUnserialize(body []byte) (interface{}, error) {
	if body == nil {
		return nil, nil
	}

	return string(body), nil
}

// ToString coerces a value into a string, the way resource URLs and sub-resource names are coerced.
func ToString(v interface{}) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}

	return fmt.Sprint(v)
}

const upperhex = "0123456789ABCDEF"

// unescaped tests if a byte passes through EncodeName untouched.
func unescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// EncodeName percent-encodes a sub-resource name the way ECMAScript's encodeURIComponent does:
// every UTF-8 byte outside the unreserved set is escaped, and spaces become %20.
func EncodeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if unescaped(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

// NameURL produces the URL of a named sub-resource.  The name is appended as a "q" parameter
// exactly as "&q=<name>", whether or not base already has a query.
func NameURL(base, name string) string {
	return base + "&q=" + EncodeName(name)
}
