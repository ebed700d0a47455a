package model

// CountryCode is an ISO 3166-1 alpha-2 code, lower case.
type CountryCode string

// supportedCountries is the fixed set of regions the streaming-search API
// partitions its options by.
var supportedCountries = map[CountryCode]struct{}{
	"ae": {}, "ar": {}, "at": {}, "au": {}, "az": {}, "be": {}, "bg": {},
	"br": {}, "ca": {}, "ch": {}, "cl": {}, "co": {}, "cy": {}, "cz": {},
	"de": {}, "dk": {}, "ec": {}, "ee": {}, "es": {}, "fi": {}, "fr": {},
	"gb": {}, "gr": {}, "hk": {}, "hr": {}, "hu": {}, "id": {}, "ie": {},
	"il": {}, "in": {}, "is": {}, "it": {}, "jp": {}, "kr": {}, "lt": {},
	"md": {}, "mk": {}, "mx": {}, "my": {}, "nl": {}, "no": {}, "nz": {},
	"pa": {}, "pe": {}, "ph": {}, "pl": {}, "pt": {}, "ro": {}, "rs": {},
	"ru": {}, "se": {}, "sg": {}, "si": {}, "sk": {}, "th": {}, "tr": {},
	"ua": {}, "us": {}, "vn": {}, "za": {},
}

// Supported reports whether the code belongs to the fixed region set.
func (c CountryCode) Supported() bool {
	_, ok := supportedCountries[c]
	return ok
}

// CountryOptions maps each region to its streaming options as returned by
// the search API.
type CountryOptions map[CountryCode][]StreamingOption

// ForCountry returns the options for one region. Unsupported or absent
// codes yield ok=false: a defined "no data for this region" outcome rather
// than an error.
func (o CountryOptions) ForCountry(code CountryCode) ([]StreamingOption, bool) {
	if !code.Supported() {
		return nil, false
	}
	options, ok := o[code]
	if !ok {
		return nil, false
	}
	return options, true
}
