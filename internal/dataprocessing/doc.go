// Package dataprocessing parses downloaded price-history files into
// series and exports combined data for downstream tools. Two source
// formats exist: the netfonds semicolon-separated daily history used for
// everything listed on Oslo Børs, and the Nasdaq OMX Excel index export.
package dataprocessing
