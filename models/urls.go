package models

import (
	"errors"
	"fmt"
)

// Route names looked up by the canonical path builders.
const (
	RouteProductListByCategory = "product_list_by_category"
	RouteProductDetail         = "product_detail"
	RouteServicePage           = "service_page"
	RouteSupportPage           = "support_page"
)

// Reverser resolves a named route and its positional arguments into a path.
type Reverser interface {
	Reverse(name string, args ...any) (string, error)
}

// ErrRouteResolution is matched by every RouteResolutionError.
var ErrRouteResolution = errors.New("route resolution failed")

// RouteResolutionError is returned by AbsoluteURL when the route cannot be built.
type RouteResolutionError struct {
	Route  string
	Reason string
	Err    error
}

func (e *RouteResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve route %q: %s: %v", e.Route, e.Reason, e.Err)
	}
	return fmt.Sprintf("resolve route %q: %s", e.Route, e.Reason)
}

func (e *RouteResolutionError) Is(target error) bool {
	return target == ErrRouteResolution
}

func (e *RouteResolutionError) Unwrap() error {
	return e.Err
}

// reverse checks the record is persisted before handing it to the route table.
func reverse(r Reverser, route string, id uint, slug string, withID bool) (string, error) {
	if r == nil {
		return "", &RouteResolutionError{Route: route, Reason: "no route table"}
	}
	if withID && id == 0 {
		return "", &RouteResolutionError{Route: route, Reason: "record has no id"}
	}
	if slug == "" {
		return "", &RouteResolutionError{Route: route, Reason: "record has no slug"}
	}

	var (
		path string
		err  error
	)
	if withID {
		path, err = r.Reverse(route, id, slug)
	} else {
		path, err = r.Reverse(route, slug)
	}
	if err != nil {
		return "", &RouteResolutionError{Route: route, Reason: "lookup failed", Err: err}
	}
	return path, nil
}
