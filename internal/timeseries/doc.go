// Package timeseries provides the in-memory price-history store used by
// every analysis component. A Series is an ordered-by-date, immutable
// sequence of daily price records for one instrument, with binary-search
// date lookups (exact, first-at-or-after, last-at-or-before) and bounded
// views for look-ahead-free backtesting.
//
// Not every market publishes the same price columns: Oslo Børs history has
// open/high/low/close while Nasdaq OMX index exports only carry a single
// value column. Callers therefore resolve prices through a column
// preference list instead of a hardcoded field.
package timeseries
