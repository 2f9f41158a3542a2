package backtest

import (
	"sort"
	"time"

	"nordquant/internal/timeseries"
)

// Market is the view of the world a strategy gets on one simulated day:
// per-symbol price histories truncated at "today". Instruments that had
// not started trading yet are absent.
type Market struct {
	today time.Time
	views map[string]*timeseries.Series
}

// Today returns the simulated day.
func (m *Market) Today() time.Time {
	return m.today
}

// Series returns the truncated history of a symbol, if it exists yet.
func (m *Market) Series(symbol string) (*timeseries.Series, bool) {
	s, ok := m.views[symbol]
	return s, ok
}

// Symbols lists the instruments trading by today, sorted.
func (m *Market) Symbols() []string {
	out := make([]string, 0, len(m.views))
	for symbol := range m.views {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}
