// Package symbols supplies the ticker lists fed into a batch fetch.
package symbols

import "context"

// Source lists the ETF symbols to query. Implementations never fail;
// they degrade to the static list instead.
type Source interface {
	ListSymbols(ctx context.Context) []string
	Name() string
}

// StaticSource returns the curated fallback list.
type StaticSource struct{}

func NewStaticSource() *StaticSource { return &StaticSource{} }

func (StaticSource) Name() string { return "static" }

func (StaticSource) ListSymbols(_ context.Context) []string {
	return Fallback()
}

// Fallback returns a fresh copy of the curated list of 100 popular ETFs.
func Fallback() []string {
	out := make([]string, len(fallbackETFs))
	copy(out, fallbackETFs)
	return out
}

var fallbackETFs = []string{
	"SPY", "QQQ", "IWM", "EEM", "VTI", "EFA", "GLD", "HYG", "LQD", "AGG",
	"VOO", "VEA", "IEMG", "IJH", "VWO", "SLV", "TLT", "IVV", "BND", "VTV",
	"IJR", "XLF", "VUG", "IEFA", "VIG", "VB", "XLE", "VNQ", "GDX", "TIP",
	"VGT", "VO", "BNDX", "VCIT", "VYM", "XLK", "VCSH", "XLV", "XLI", "XLP",
	"DIA", "IWF", "VT", "EMB", "IWD", "SCHF", "XLU", "XLY", "USMV", "QUAL",
	"RSP", "VBR", "VXF", "SCHX", "IWB", "MDY", "VBK", "ITOT", "VXUS", "SCHA",
	"XLB", "SCHD", "VGK", "IWP", "SCHE", "VEU", "SPDW", "SPEM", "DGRO", "IYR",
	"IWN", "IUSB", "XLC", "MBB", "GOVT", "PFF", "SHY", "IWV", "DVY", "SDY",
	"IWS", "MGC", "VV", "IVW", "MGK", "SCHG", "IWR", "SCHB", "VTEB", "SLYV",
	"SPYG", "IWO", "VCR", "VDC", "SPSM", "VTIP", "IEF", "VHT", "SPYV", "SPTM",
}
