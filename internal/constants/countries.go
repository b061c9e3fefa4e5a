// Package constants defines the Netflix Top 10 country table.
package constants

// CountryDisplayNames maps ISO country codes to the display names
// Netflix uses for its Top 10 pages. The URL slug is derived from the
// display name by lowercasing, stripping diacritics and hyphenating.
var CountryDisplayNames = map[string]string{
	"AR": "Argentina",
	"AU": "Australia",
	"AT": "Austria",
	"BS": "Bahamas",
	"BH": "Bahrain",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BO": "Bolivia",
	"BR": "Brazil",
	"BG": "Bulgaria",
	"CA": "Canada",
	"CL": "Chile",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"HR": "Croatia",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DK": "Denmark",
	"DO": "Dominican Republic",
	"EC": "Ecuador",
	"EG": "Egypt",
	"SV": "El Salvador",
	"EE": "Estonia",
	"FI": "Finland",
	"FR": "France",
	"DE": "Germany",
	"GR": "Greece",
	"GP": "Guadeloupe",
	"GT": "Guatemala",
	"HN": "Honduras",
	"HK": "Hong Kong",
	"HU": "Hungary",
	"IS": "Iceland",
	"IN": "India",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IT": "Italy",
	"JM": "Jamaica",
	"JP": "Japan",
	"JO": "Jordan",
	"KE": "Kenya",
	"KW": "Kuwait",
	"LV": "Latvia",
	"LB": "Lebanon",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"MY": "Malaysia",
	"MV": "Maldives",
	"MT": "Malta",
	"MQ": "Martinique",
	"MU": "Mauritius",
	"MX": "Mexico",
	"MA": "Morocco",
	"NL": "Netherlands",
	"NC": "New Caledonia",
	"NZ": "New Zealand",
	"NI": "Nicaragua",
	"NG": "Nigeria",
	"NO": "Norway",
	"OM": "Oman",
	"PK": "Pakistan",
	"PA": "Panama",
	"PY": "Paraguay",
	"PE": "Peru",
	"PH": "Philippines",
	"PL": "Poland",
	"PT": "Portugal",
	"QA": "Qatar",
	"RE": "Réunion",
	"RO": "Romania",
	"RU": "Russia",
	"SA": "Saudi Arabia",
	"RS": "Serbia",
	"SG": "Singapore",
	"SK": "Slovakia",
	"SI": "Slovenia",
	"ZA": "South Africa",
	"KR": "South Korea",
	"ES": "Spain",
	"LK": "Sri Lanka",
	"SE": "Sweden",
	"CH": "Switzerland",
	"TW": "Taiwan",
	"TH": "Thailand",
	"TT": "Trinidad and Tobago",
	"TR": "Türkiye",
	"UA": "Ukraine",
	"AE": "United Arab Emirates",
	"GB": "United Kingdom",
	"US": "United States",
	"UY": "Uruguay",
	"VE": "Venezuela",
	"VN": "Vietnam",
}
