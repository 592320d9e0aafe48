package dispatchers

import "github.com/da-tools/da/internal/pattern"

// ActionFunc handles a matched route.
type ActionFunc func(values pattern.Captures) error

// Route pairs a pattern with its help text and handler.
type Route struct {
	Pattern     string
	Description string
	Action      ActionFunc
}

// Run offers every route to d in order, finalizes, and runs the action of
// the route that matched. All routes are offered even after a match so that
// help mode lists each of them.
func Run(d *Dispatcher, routes []Route) error {
	winner := -1
	for i, r := range routes {
		if d.TryPattern(r.Pattern, r.Description) {
			winner = i
		}
	}

	if err := d.Finalize(); err != nil {
		return err
	}

	if winner < 0 || routes[winner].Action == nil {
		return nil
	}
	return routes[winner].Action(d.Values())
}
