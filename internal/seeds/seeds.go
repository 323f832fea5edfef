// Package seeds provides the manually curated asset list. Seeds are
// pre-vetted additions that bypass upstream liquidity filters; the source
// performs no I/O.
package seeds

import (
	"context"

	"marketfetcher/internal/asset"
)

// SourceName is the provenance tag stamped on every seed record.
const SourceName = "static_seed"

type seed struct {
	ticker    string
	name      string
	quoteType string
	sector    string
	industry  string
	country   string
	exchange  string
	currency  string
}

var curated = []seed{
	// US mega cap tech
	{ticker: "NVDA", name: "NVIDIA", sector: "Technology", industry: "Semiconductors", country: "US"},
	{ticker: "AAPL", name: "Apple", sector: "Technology", industry: "Hardware", country: "US"},
	{ticker: "MSFT", name: "Microsoft", sector: "Technology", industry: "Software", country: "US"},
	{ticker: "GOOGL", name: "Alphabet", sector: "Technology", industry: "Software", country: "US"},
	{ticker: "META", name: "Meta Platforms", sector: "Technology", industry: "Social Media", country: "US"},
	{ticker: "AMZN", name: "Amazon", sector: "Consumer", industry: "E-Commerce", country: "US"},
	{ticker: "AMD", name: "AMD", sector: "Technology", industry: "Semiconductors", country: "US"},
	{ticker: "INTC", name: "Intel", sector: "Technology", industry: "Semiconductors", country: "US"},
	{ticker: "AVGO", name: "Broadcom", sector: "Technology", industry: "Semiconductors", country: "US"},
	{ticker: "TSLA", name: "Tesla", sector: "Consumer", industry: "Automotive", country: "US"},
	{ticker: "PLTR", name: "Palantir", sector: "Technology", industry: "AI / ML", country: "US"},
	{ticker: "CRM", name: "Salesforce", sector: "Technology", industry: "Software", country: "US"},
	{ticker: "ORCL", name: "Oracle", sector: "Technology", industry: "Software", country: "US"},
	{ticker: "RGTI", name: "Rigetti Computing", sector: "Technology", industry: "Quantum Computing", country: "US"},

	// US consumer and healthcare
	{ticker: "WMT", name: "Walmart", sector: "Consumer", industry: "Retail", country: "US"},
	{ticker: "TGT", name: "Target", sector: "Consumer", industry: "Retail", country: "US"},
	{ticker: "COST", name: "Costco", sector: "Consumer", industry: "Retail", country: "US"},
	{ticker: "HLT", name: "Hilton Worldwide", sector: "Consumer", industry: "Hotels", country: "US"},
	{ticker: "JNJ", name: "Johnson & Johnson", sector: "Healthcare", industry: "Pharma", country: "US"},
	{ticker: "UNH", name: "UnitedHealth", sector: "Healthcare", industry: "Insurance", country: "US"},
	{ticker: "LLY", name: "Eli Lilly", sector: "Healthcare", industry: "Pharma", country: "US"},
	{ticker: "PFE", name: "Pfizer", sector: "Healthcare", industry: "Pharma", country: "US"},

	// US finance and industrials
	{ticker: "JPM", name: "JPMorgan Chase", sector: "Finance", industry: "Banking", country: "US"},
	{ticker: "GS", name: "Goldman Sachs", sector: "Finance", industry: "Investment Banking", country: "US"},
	{ticker: "V", name: "Visa", sector: "Finance", industry: "Payments", country: "US"},
	{ticker: "MA", name: "Mastercard", sector: "Finance", industry: "Payments", country: "US"},
	{ticker: "CAT", name: "Caterpillar", sector: "Industrials", industry: "Machinery", country: "US"},
	{ticker: "BA", name: "Boeing", sector: "Industrials", industry: "Aerospace", country: "US"},
	{ticker: "GE", name: "GE Aerospace", sector: "Industrials", industry: "Aerospace", country: "US"},

	// FTSE 100
	{ticker: "ABF.L", name: "Associated British Foods", sector: "Consumer", industry: "Food", country: "GB", exchange: "LSE", currency: "GBP"},
	{ticker: "ADM.L", name: "Admiral Group", sector: "Finance", industry: "Insurance", country: "GB", exchange: "LSE", currency: "GBP"},
	{ticker: "AHT.L", name: "Ashtead Group", sector: "Industrials", industry: "Equipment Rental", country: "GB", exchange: "LSE", currency: "GBP"},
	{ticker: "ANTO.L", name: "Antofagasta", sector: "Materials", industry: "Copper Mining", country: "CL", exchange: "LSE", currency: "GBP"},
	{ticker: "FLTR.L", name: "Flutter Entertainment", sector: "Consumer", industry: "Gambling", country: "IE", exchange: "LSE", currency: "GBP"},
	{ticker: "SHEL.L", name: "Shell", sector: "Energy", industry: "Oil & Gas", country: "GB", exchange: "LSE", currency: "GBP"},
	{ticker: "AZN.L", name: "AstraZeneca", sector: "Healthcare", industry: "Pharma", country: "GB", exchange: "LSE", currency: "GBP"},
	{ticker: "HSBA.L", name: "HSBC Holdings", sector: "Finance", industry: "Banking", country: "GB", exchange: "LSE", currency: "GBP"},

	// Metals and mining
	{ticker: "GFI", name: "Gold Fields", sector: "Materials", industry: "Gold Mining", country: "ZA"},
	{ticker: "AEM", name: "Agnico Eagle Mines", sector: "Materials", industry: "Gold Mining", country: "CA"},
	{ticker: "NEM", name: "Newmont Corporation", sector: "Materials", industry: "Gold Mining", country: "US"},
	{ticker: "KGC", name: "Kinross Gold", sector: "Materials", industry: "Gold Mining", country: "CA"},
	{ticker: "GOLD", name: "Barrick Gold", sector: "Materials", industry: "Gold Mining", country: "CA"},
	{ticker: "WPM", name: "Wheaton Precious Metals", sector: "Materials", industry: "Royalties", country: "CA"},
	{ticker: "FNV", name: "Franco-Nevada", sector: "Materials", industry: "Royalties", country: "CA"},
	{ticker: "PAAS", name: "Pan American Silver", sector: "Materials", industry: "Silver Mining", country: "CA"},
	{ticker: "SCCO", name: "Southern Copper", sector: "Materials", industry: "Copper", country: "US"},
	{ticker: "TECK", name: "Teck Resources", sector: "Materials", industry: "Diversified Mining", country: "CA"},
	{ticker: "STLD", name: "Steel Dynamics", sector: "Materials", industry: "Steel", country: "US"},
	{ticker: "MP", name: "MP Materials", sector: "Materials", industry: "Rare Earth", country: "US"},
	{ticker: "SQM", name: "Sociedad Quimica", sector: "Materials", industry: "Lithium", country: "CL"},
	{ticker: "PLL", name: "Piedmont Lithium", sector: "Materials", industry: "Lithium", country: "US"},

	// Thematic ETFs
	{ticker: "CIBR", name: "Cybersecurity ETF", quoteType: "ETF", sector: "ETF", industry: "Cybersecurity", country: "US"},
	{ticker: "AIQ", name: "AI & Technology ETF", quoteType: "ETF", sector: "ETF", industry: "AI", country: "US"},
	{ticker: "UFO", name: "Space ETF", quoteType: "ETF", sector: "ETF", industry: "Space", country: "US"},
	{ticker: "SPY", name: "SPDR S&P 500 ETF", quoteType: "ETF", sector: "ETF", industry: "Index", country: "US"},
	{ticker: "QQQ", name: "Invesco NASDAQ 100 ETF", quoteType: "ETF", sector: "ETF", industry: "Index", country: "US"},
	{ticker: "TLT", name: "iShares 20yr Treasury ETF", quoteType: "ETF", sector: "ETF", industry: "Bonds", country: "US"},

	// Crypto proxies
	{ticker: "COIN", name: "Coinbase", sector: "Finance", industry: "Crypto Exchange", country: "US"},
	{ticker: "MSTR", name: "MicroStrategy", sector: "Technology", industry: "Bitcoin Treasury", country: "US"},
	{ticker: "BTC-USD", name: "Bitcoin", quoteType: "CRYPTOCURRENCY", sector: "Crypto", industry: "Store of Value", country: "US"},
	{ticker: "ETH-USD", name: "Ethereum", quoteType: "CRYPTOCURRENCY", sector: "Crypto", industry: "Smart Contracts", country: "US"},
	{ticker: "LTC-USD", name: "Litecoin", quoteType: "CRYPTOCURRENCY", sector: "Crypto", industry: "Payments", country: "US"},
}

// Source returns the curated list, stamping provenance and a default
// quote type on each record.
type Source struct{}

// New creates the static seed source.
func New() *Source { return &Source{} }

// Name implements asset.Source.
func (s *Source) Name() string { return SourceName }

// Fetch implements asset.Source. It is synchronous and cannot fail.
func (s *Source) Fetch(_ context.Context) ([]asset.Record, error) {
	records := make([]asset.Record, 0, len(curated))
	for _, sd := range curated {
		quoteType := sd.quoteType
		if quoteType == "" {
			quoteType = "EQUITY"
		}
		rec := asset.Record{
			Ticker:    sd.ticker,
			Source:    SourceName,
			Name:      asset.String(sd.name),
			QuoteType: asset.String(quoteType),
			Sector:    asset.String(sd.sector),
			Industry:  asset.String(sd.industry),
			Country:   asset.String(sd.country),
		}
		if sd.exchange != "" {
			rec.Exchange = asset.String(sd.exchange)
		}
		if sd.currency != "" {
			rec.Currency = asset.String(sd.currency)
		}
		records = append(records, rec)
	}
	return records, nil
}
