package components

import "strings"

type NavItem struct {
	Name   string
	Href   string
	Active bool
}

var navEntries = []NavItem{
	{Name: "Home", Href: "/"},
	{Name: "Domain", Href: "/domain"},
	{Name: "Milestones", Href: "/milestones"},
	{Name: "Documents", Href: "/documents"},
	{Name: "Presentations", Href: "/presentations"},
	{Name: "About Us", Href: "/about"},
	{Name: "Contact", Href: "/contact"},
}

// Routes lists every navigable route in header order.
func Routes() []string {
	routes := make([]string, len(navEntries))
	for i, e := range navEntries {
		routes[i] = e.Href
	}
	return routes
}

// Nav returns the header entries with at most one marked active: the one whose
// href equals the current route. Trailing slashes are ignored.
func Nav(current string) []NavItem {
	current = NormalizeRoute(current)
	items := make([]NavItem, len(navEntries))
	for i, e := range navEntries {
		e.Active = current != "" && e.Href == current
		items[i] = e
	}
	return items
}

// NormalizeRoute strips the query, fragment and trailing slashes of a path.
// The root stays "/".
func NormalizeRoute(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	route = strings.TrimSpace(route)
	if route == "" {
		return ""
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	trimmed := strings.TrimRight(route, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
