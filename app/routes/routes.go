package routes

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/mytheresa/go-shop/models"
)

// Namespace prefixes route names registered by Default. Names are accepted
// with or without it.
const Namespace = "shop"

var (
	ErrUnknownRoute = errors.New("no route with that name")
	ErrArgCount     = errors.New("wrong number of route arguments")
	ErrEmptyArg     = errors.New("empty route argument")
)

// Route is a named path template. Parameters are written gin-style as
// ":name" segments and filled positionally.
type Route struct {
	Name     string
	Template string
	params   []string
}

// Params returns the parameter names in template order.
func (r Route) Params() []string {
	return r.params
}

// Table maps route names to templates. It is built once at startup and is
// safe for concurrent reads afterwards.
type Table struct {
	routes map[string]Route
}

func NewTable() *Table {
	return &Table{routes: make(map[string]Route)}
}

// Default returns the table carrying the shop routes.
func Default() *Table {
	t := NewTable()
	t.MustAdd(models.RouteProductListByCategory, "/:category_slug/")
	t.MustAdd(models.RouteProductDetail, "/:id/:slug/")
	t.MustAdd(models.RouteServicePage, "/service/:id/:slug/")
	t.MustAdd(models.RouteSupportPage, "/support/:id/:slug/")
	return t
}

// Add registers a template under name, replacing any previous one.
func (t *Table) Add(name, template string) error {
	name = strip(name)
	if name == "" {
		return errors.New("route name is required")
	}
	if !strings.HasPrefix(template, "/") {
		return fmt.Errorf("route %q: template %q must start with /", name, template)
	}

	var params []string
	for _, seg := range strings.Split(template, "/") {
		if strings.HasPrefix(seg, ":") {
			if len(seg) == 1 {
				return fmt.Errorf("route %q: unnamed parameter in %q", name, template)
			}
			params = append(params, seg[1:])
		}
	}

	t.routes[name] = Route{Name: name, Template: template, params: params}
	return nil
}

func (t *Table) MustAdd(name, template string) {
	if err := t.Add(name, template); err != nil {
		panic(err)
	}
}

func (t *Table) Lookup(name string) (Route, bool) {
	r, ok := t.routes[strip(name)]
	return r, ok
}

// Routes returns every route sorted by name.
func (t *Table) Routes() []Route {
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reverse fills the named template with args in order. Each argument is
// formatted with %v and path-escaped.
func (t *Table) Reverse(name string, args ...any) (string, error) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownRoute)
	}
	if len(args) != len(r.params) {
		return "", fmt.Errorf("%q takes %d, got %d: %w", r.Name, len(r.params), len(args), ErrArgCount)
	}

	segs := strings.Split(r.Template, "/")
	i := 0
	for n, seg := range segs {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		v := fmt.Sprint(args[i])
		if v == "" {
			return "", fmt.Errorf("%q parameter %s: %w", r.Name, r.params[i], ErrEmptyArg)
		}
		segs[n] = url.PathEscape(v)
		i++
	}
	return strings.Join(segs, "/"), nil
}

func strip(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), Namespace+":")
}

var _ models.Reverser = (*Table)(nil)
