// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package urls names the app's routes and turns names back into paths.
package urls

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Route names
const (
	Index  = "polls:index"
	Detail = "polls:detail"
)

var ErrUnknownRoute = errors.New("unknown route")

var patterns = map[string]string{
	Index:  "/polls/",
	Detail: "/polls/{id}/",
}

// Pattern returns the ServeMux path pattern registered for name.
func Pattern(name string) (string, error) {
	p, ok := patterns[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return p, nil
}

// MustPattern is Pattern for route tables built at startup.
func MustPattern(name string) string {
	p, err := Pattern(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Reverse fills the {params} of a named route, in order, with args.
func Reverse(name string, args ...string) (string, error) {
	p, err := Pattern(name)
	if err != nil {
		return "", err
	}

	segments := strings.Split(p, "/")
	var params []int
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			params = append(params, i)
		}
	}

	if len(params) != len(args) {
		return "", fmt.Errorf("route %s: expected %d argument(s), got %d", name, len(params), len(args))
	}

	for n, i := range params {
		segments[i] = url.PathEscape(args[n])
	}

	return strings.Join(segments, "/"), nil
}
