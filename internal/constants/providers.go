// Package constants defines the streaming provider tables.
package constants

// Provider describes one streaming service catalog offered by the addon.
type Provider struct {
	Name  string
	Types []string // "movie", "series"
}

// Providers maps JustWatch provider codes to display info. The manifest
// is built from this table.
var Providers = map[string]Provider{
	"nfx":     {Name: "Netflix", Types: []string{"movie", "series"}},
	"nfk":     {Name: "Netflix Kids", Types: []string{"movie", "series"}},
	"hbm":     {Name: "HBO Max", Types: []string{"movie", "series"}},
	"dnp":     {Name: "Disney+", Types: []string{"movie", "series"}},
	"hlu":     {Name: "Hulu", Types: []string{"movie", "series"}},
	"amp":     {Name: "Prime Video", Types: []string{"movie", "series"}},
	"pmp":     {Name: "Paramount+", Types: []string{"movie", "series"}},
	"atp":     {Name: "Apple TV+", Types: []string{"movie", "series"}},
	"pcp":     {Name: "Peacock", Types: []string{"movie", "series"}},
	"cru":     {Name: "Crunchyroll", Types: []string{"movie", "series"}},
	"jhs":     {Name: "JioHotstar", Types: []string{"movie", "series"}},
	"zee":     {Name: "Zee5", Types: []string{"movie", "series"}},
	"vil":     {Name: "Videoland", Types: []string{"movie", "series"}},
	"clv":     {Name: "Clarovideo", Types: []string{"movie", "series"}},
	"gop":     {Name: "Globoplay", Types: []string{"movie", "series"}},
	"hay":     {Name: "Hayu", Types: []string{"series"}},
	"nlz":     {Name: "NLZIET", Types: []string{"movie", "series"}},
	"sst":     {Name: "SkyShowtime", Types: []string{"movie", "series"}},
	"mgl":     {Name: "MagellanTV", Types: []string{"movie", "series"}},
	"cts":     {Name: "Curiosity Stream", Types: []string{"movie", "series"}},
	"cpd":     {Name: "Canal+", Types: []string{"movie", "series"}},
	"stz":     {Name: "Starz", Types: []string{"movie", "series"}},
	"dpe":     {Name: "Discovery+", Types: []string{"series"}},
	"mbi":     {Name: "Mubi", Types: []string{"movie"}},
	"vik":     {Name: "Rakuten Viki", Types: []string{"movie", "series"}},
	"sgo":     {Name: "Sky Go", Types: []string{"movie", "series"}},
	"sonyliv": {Name: "Sony Liv", Types: []string{"movie", "series"}},
	"mp9":     {Name: "Movistar+", Types: []string{"movie", "series"}},
	"shd":     {Name: "Shudder", Types: []string{"movie", "series"}},
	"bbo":     {Name: "Broadway HD", Types: []string{"movie", "series"}},
	"act":     {Name: "Acorn TV", Types: []string{"movie", "series"}},
	"itv":     {Name: "ITVX", Types: []string{"movie", "series"}},
	"bbc":     {Name: "BBC iPlayer", Types: []string{"movie", "series"}},
	"al4":     {Name: "Channel 4", Types: []string{"movie", "series"}},
	"crc":     {Name: "Criterion Channel", Types: []string{"movie"}},
	"iqi":     {Name: "iQIYI", Types: []string{"movie", "series"}},
	"sha":     {Name: "Shahid VIP", Types: []string{"movie", "series"}},
}

// LegacyProviderAliases maps retired provider codes to their replacements.
var LegacyProviderAliases = map[string]string{
	"pct": "pcp", // Peacock
	"hst": "jhs", // Hotstar merged into JioHotstar
	"fmn": "cru", // Funimation merged into Crunchyroll
	"top": "nfx", // legacy netflix-only catalog id
}

// CatalogFetch pins the country and language a provider catalog is
// refreshed from during the background sweep.
type CatalogFetch struct {
	Code     string
	Country  string
	Language string
}

// MovieCatalogFetches lists the movie catalogs refreshed by the sweep,
// in refresh order.
var MovieCatalogFetches = []CatalogFetch{
	{"nfx", "GB", "en"}, {"nfk", "US", "en"}, {"dnp", "GB", "en"},
	{"atp", "GB", "en"}, {"amp", "US", "en"}, {"pmp", "US", "en"},
	{"hbm", "NL", "en"}, {"hlu", "US", "en"}, {"pcp", "US", "en"},
	{"cts", "US", "en"}, {"mgl", "US", "en"}, {"cru", "US", "en"},
	{"jhs", "IN", "in"}, {"zee", "IN", "in"}, {"vil", "NL", "nl"},
	{"nlz", "NL", "nl"}, {"sst", "NL", "nl"}, {"clv", "BR", "br"},
	{"gop", "BR", "br"}, {"cpd", "FR", "fr"}, {"stz", "US", "en"},
	{"mbi", "US", "en"}, {"vik", "US", "en"}, {"sgo", "DE", "de"},
	{"sonyliv", "IN", "hi"}, {"mp9", "ES", "es"}, {"shd", "US", "en"},
	{"bbo", "US", "en"}, {"act", "US", "en"}, {"crc", "US", "en"},
	{"iqi", "US", "en"}, {"sha", "US", "en"}, {"itv", "GB", "en"},
	{"bbc", "GB", "en"}, {"al4", "GB", "en"},
}

// SeriesCatalogFetches lists the series catalogs refreshed by the sweep.
var SeriesCatalogFetches = []CatalogFetch{
	{"nfx", "GB", "en"}, {"nfk", "US", "en"}, {"dnp", "GB", "en"},
	{"atp", "GB", "en"}, {"hay", "GB", "en"}, {"dpe", "GB", "en"},
	{"amp", "US", "en"}, {"pmp", "US", "en"}, {"hbm", "NL", "en"},
	{"hlu", "US", "en"}, {"pcp", "US", "en"}, {"cru", "US", "en"},
	{"cts", "US", "en"}, {"mgl", "US", "en"}, {"jhs", "IN", "in"},
	{"zee", "IN", "in"}, {"vil", "NL", "nl"}, {"nlz", "NL", "nl"},
	{"sst", "NL", "nl"}, {"clv", "BR", "br"}, {"gop", "BR", "br"},
	{"cpd", "FR", "fr"}, {"stz", "US", "en"}, {"vik", "US", "en"},
	{"sgo", "DE", "de"}, {"sonyliv", "IN", "hi"}, {"mp9", "ES", "es"},
	{"shd", "US", "en"}, {"bbo", "US", "en"}, {"act", "US", "en"},
	{"iqi", "US", "en"}, {"sha", "US", "en"}, {"itv", "GB", "en"},
	{"bbc", "GB", "en"}, {"al4", "GB", "en"},
}
