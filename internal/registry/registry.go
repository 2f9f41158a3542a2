// Package registry resolves instrument symbols to their metadata and
// loaded price series. It replaces the hidden module-level caches of
// earlier tooling with an explicit repository built once at startup and
// passed by handle to every consumer.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"nordquant/internal/timeseries"
)

var (
	// ErrUnknownSymbol reports a symbol no market or index lists.
	ErrUnknownSymbol = errors.New("unknown instrument symbol")
	// ErrNoSeries reports an instrument whose price history has not been
	// attached yet.
	ErrNoSeries = errors.New("no price series loaded for instrument")
)

// Format names the wire format an instrument's history is published in.
type Format string

const (
	// FormatSDV is the netfonds semicolon-separated daily history.
	FormatSDV Format = "sdv"
	// FormatXLSX is the Nasdaq OMX Excel export.
	FormatXLSX Format = "xlsx"
)

// listing is one (symbol, company name) table row.
type listing struct {
	Symbol string
	Name   string
}

// Instrument is one tradable ticker or index with its static metadata and,
// once attached, its price series.
type Instrument struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Market   string   `json:"market"`
	Sector   string   `json:"sector,omitempty"`
	Segments []string `json:"segments,omitempty"`
	IsIndex  bool     `json:"is_index"`
	// Members lists the constituent symbols of an index, when known.
	Members []string `json:"members,omitempty"`
	// DownloadURL is where the scraper fetches this instrument's full
	// daily history.
	DownloadURL string `json:"-"`
	// SourceFormat selects the parser for downloaded history files.
	SourceFormat Format `json:"-"`

	series *timeseries.Series
}

// Series returns the attached price history.
func (i *Instrument) Series() (*timeseries.Series, error) {
	if i.series == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSeries, i.Symbol)
	}
	return i.series, nil
}

// Market is one market place and the symbols listed on it.
type Market struct {
	Name    string
	Long    string
	Symbols []string
}

// Registry maps symbols to instruments for the Oslo Børs market places
// and the Nasdaq OMX Nordic indexes. Construction validates the static
// tables; attaching series is safe for concurrent use afterwards.
type Registry struct {
	mu          sync.RWMutex
	instruments map[string]*Instrument
	markets     []Market
}

const netfondsURL = "http://hopey.netfonds.no/paperhistory.php?paper=%s.%s&csv_format=sdv"
const nasdaqOMXURL = "https://indexes.nasdaqomx.com/Index/ExportHistory/%s?startDate=2000-01-01T00:00:00.000&endDate=2050-01-01T00:00:00.000&timeOfDay=EOD"

// New builds the registry from the static market, sector, segment and
// index tables. A symbol appearing twice, or a sector claiming a symbol
// that already has one, is a table integrity error.
func New() (*Registry, error) {
	r := &Registry{instruments: make(map[string]*Instrument)}

	marketTables := []struct {
		name     string
		long     string
		listings []listing
	}{
		{"OSE", "Oslo Børs all", marketOSE},
		{"OAX", "Oslo Axess", marketOAX},
		{"MERK", "Merkur Market", marketMerk},
	}
	for _, mt := range marketTables {
		market := Market{Name: mt.name, Long: mt.long}
		for _, l := range mt.listings {
			if _, exists := r.instruments[l.Symbol]; exists {
				return nil, fmt.Errorf("registry table: symbol %s listed twice", l.Symbol)
			}
			r.instruments[l.Symbol] = &Instrument{
				Symbol:       l.Symbol,
				Name:         l.Name,
				Market:       mt.name,
				DownloadURL:  fmt.Sprintf(netfondsURL, l.Symbol, mt.name),
				SourceFormat: FormatSDV,
			}
			market.Symbols = append(market.Symbols, l.Symbol)
		}
		r.markets = append(r.markets, market)
	}

	sectorTables := map[string][]listing{
		"egenkapitalsbevis": sectorEgenkapitalsbevis,
		"energi":            sectorEnergi,
		"materialer":        sectorMaterialer,
		"industri":          sectorIndustri,
		"forbruksvarer":     sectorForbruksvarer,
		"konsumvarer":       sectorKonsumvarer,
		"helsevern":         sectorHelsevern,
		"finans":            sectorFinans,
		"it":                sectorIT,
		"telekom":           sectorTelekom,
		"forsyning":         sectorForsyning,
		"eiendom":           sectorEiendom,
	}
	for sector, listings := range sectorTables {
		for _, l := range listings {
			inst, ok := r.instruments[l.Symbol]
			if !ok {
				return nil, fmt.Errorf("registry table: sector %s lists unknown symbol %s", sector, l.Symbol)
			}
			if inst.Sector != "" {
				return nil, fmt.Errorf("registry table: symbol %s in both %s and %s", l.Symbol, inst.Sector, sector)
			}
			inst.Sector = sector
		}
	}

	segmentTables := map[string][]listing{
		"OBX":      segmentOBX,
		"Match":    segmentMatch,
		"Standard": segmentStandard,
		"Nye":      segmentNye,
	}
	for segment, listings := range segmentTables {
		for _, l := range listings {
			inst, ok := r.instruments[l.Symbol]
			if !ok {
				return nil, fmt.Errorf("registry table: segment %s lists unknown symbol %s", segment, l.Symbol)
			}
			inst.Segments = append(inst.Segments, segment)
		}
	}

	// Oslo Børs indexes are downloaded from netfonds like any ticker.
	osloIndexes := []struct {
		listing
		members []listing
	}{
		{listing{"OSEBX", "Hovedindeksen"}, indexOSEBX},
		{listing{"OBX", "OBX Total Return Index"}, indexOBX},
	}
	for _, idx := range osloIndexes {
		if _, exists := r.instruments[idx.Symbol]; exists {
			return nil, fmt.Errorf("registry table: index symbol %s collides with a ticker", idx.Symbol)
		}
		members := make([]string, 0, len(idx.members))
		for _, m := range idx.members {
			if _, ok := r.instruments[m.Symbol]; !ok {
				return nil, fmt.Errorf("registry table: index %s lists unknown symbol %s", idx.Symbol, m.Symbol)
			}
			members = append(members, m.Symbol)
		}
		r.instruments[idx.Symbol] = &Instrument{
			Symbol:       idx.Symbol,
			Name:         idx.Name,
			Market:       "OSE",
			IsIndex:      true,
			Members:      members,
			DownloadURL:  fmt.Sprintf(netfondsURL, idx.Symbol, "OSE"),
			SourceFormat: FormatSDV,
		}
	}

	// Nasdaq OMX Nordic indexes come from the index export endpoint and
	// only carry a value column.
	omxIndexes := []listing{
		{"OMXO20GI", "OMX Oslo 20 Gross Index"},
		{"OMXS30", "OMX Stockholm 30 Index"},
		{"OMXH25", "OMX Helsinki 25"},
		{"OMXC20CAP", "OMX Copenhagen 20 CAP"},
	}
	for _, l := range omxIndexes {
		if _, exists := r.instruments[l.Symbol]; exists {
			return nil, fmt.Errorf("registry table: index symbol %s collides with a ticker", l.Symbol)
		}
		r.instruments[l.Symbol] = &Instrument{
			Symbol:       l.Symbol,
			Name:         l.Name,
			Market:       "OMX",
			IsIndex:      true,
			DownloadURL:  fmt.Sprintf(nasdaqOMXURL, l.Symbol),
			SourceFormat: FormatXLSX,
		}
	}

	return r, nil
}

// Lookup resolves a symbol to its instrument.
func (r *Registry) Lookup(symbol string) (*Instrument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instruments[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return inst, nil
}

// Series resolves a symbol straight to its attached price history.
func (r *Registry) Series(symbol string) (*timeseries.Series, error) {
	inst, err := r.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return inst.Series()
}

// Attach binds a loaded price series to an instrument.
func (r *Registry) Attach(symbol string, s *timeseries.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instruments[symbol]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	inst.series = s
	return nil
}

// Symbols returns every known symbol in sorted order.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	symbols := make([]string, 0, len(r.instruments))
	for s := range r.instruments {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Loaded returns the symbols that have a series attached, sorted.
func (r *Registry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var symbols []string
	for s, inst := range r.instruments {
		if inst.series != nil {
			symbols = append(symbols, s)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// Markets returns the market places and their listings.
func (r *Registry) Markets() []Market {
	return r.markets
}

// Instruments returns every instrument, sorted by symbol.
func (r *Registry) Instruments() []*Instrument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Instrument, 0, len(r.instruments))
	for _, inst := range r.instruments {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Sector returns the instruments assigned to a sector, sorted by symbol.
func (r *Registry) Sector(name string) []*Instrument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Instrument
	for _, inst := range r.instruments {
		if inst.Sector == name {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
