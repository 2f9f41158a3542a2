// Package seasonal computes historical-return-by-calendar-date statistics.
//
// The sampler re-anchors a (buy date, sell date) pair by whole-year steps
// across an instrument's full price history, producing one realized return
// per available year. The aggregator reduces those observations to mean
// gain, win ratio and sample dispersion. On top of both, the sweep engine
// repeats the computation for every calendar date of a reference year to
// rank the historically best and worst dates to buy, and the sell-date
// scan answers when one should have bought to sell on a fixed date.
//
// Everything here is pure computation over immutable series; per-date
// sweep work is fanned out over a bounded worker pool.
package seasonal
