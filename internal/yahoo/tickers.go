package yahoo

import (
	"context"

	"marketfetcher/internal/asset"
	"marketfetcher/internal/coordinator"
)

// forexTickers covers the major and most-traded minor pairs.
var forexTickers = []string{
	"EURUSD=X", "GBPUSD=X", "USDJPY=X", "USDCHF=X", "AUDUSD=X",
	"USDCAD=X", "NZDUSD=X", "EURGBP=X", "EURJPY=X", "GBPJPY=X",
	"USDCNH=X", "USDINR=X", "USDMXN=X", "USDBRL=X", "USDSGD=X",
	"USDKRW=X", "USDHKD=X", "USDTRY=X", "USDZAR=X", "USDNOK=X",
}

// commodityTickers mixes futures contracts and liquid commodity ETFs.
var commodityTickers = []string{
	"GC=F", "SI=F", "CL=F", "BZ=F", "NG=F", "HG=F",
	"ZW=F", "ZC=F", "ZS=F", "GLD", "SLV", "USO", "UNG",
}

// etfTickers spans broad index, sector, thematic and country funds.
var etfTickers = []string{
	"SPY", "QQQ", "IWM", "DIA", "VTI", "VOO", "VEA", "VWO", "EFA", "EEM",
	"XLK", "XLF", "XLV", "XLE", "XLI", "XLB", "XLY", "XLP", "XLRE", "XLU",
	"GLD", "SLV", "TLT", "IEF", "LQD", "HYG", "VNQ", "ARKK", "ARKG", "ARKW",
	"SQQQ", "TQQQ", "SPXL", "SPXS", "UVXY", "VXX",
	"SOXX", "SMH", "IBB", "XBI", "IHI", "IYT", "ITB", "XHB",
	"EWJ", "EWZ", "EWC", "EWA", "EWG", "EWU", "FXI", "INDA",
	"BOTZ", "ROBO", "AIQ", "WCLD", "BUG", "HACK",
	"ICLN", "QCLN", "TAN", "FAN", "ACES", "GRID",
	"CPER", "REMX", "LIT", "PICK", "SIL", "GDX", "GDXJ",
}

// TickerListSource adapts a fixed ticker set into an asset.Source by
// running it through the batch coordinator.
type TickerListSource struct {
	name        string
	tickers     []string
	batch       *coordinator.Coordinator
	concurrency int
}

// Name implements asset.Source.
func (s *TickerListSource) Name() string { return s.name }

// Fetch implements asset.Source.
func (s *TickerListSource) Fetch(ctx context.Context) ([]asset.Record, error) {
	return s.batch.FetchBatch(ctx, s.tickers, coordinator.Options{Concurrency: s.concurrency}), nil
}

// NewForexSource returns the fixed forex pair list as a source.
func NewForexSource(batch *coordinator.Coordinator) *TickerListSource {
	return &TickerListSource{name: "yahoo_forex", tickers: forexTickers, batch: batch}
}

// NewCommoditiesSource returns the fixed commodity list as a source.
func NewCommoditiesSource(batch *coordinator.Coordinator) *TickerListSource {
	return &TickerListSource{name: "yahoo_commodities", tickers: commodityTickers, batch: batch}
}

// NewETFSource returns the fixed ETF list as a source. The list is long,
// so it runs at reduced concurrency to stay under Yahoo's throttle.
func NewETFSource(batch *coordinator.Coordinator) *TickerListSource {
	return &TickerListSource{name: "yahoo_etfs", tickers: etfTickers, batch: batch, concurrency: 3}
}
