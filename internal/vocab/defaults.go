package vocab

// Built-in US English vocabulary. All keys and values are lowercase; the
// state table maps both abbreviations and full names to the canonical
// two-letter form.

var defaultNicknames = map[string][]string{
	"bob":     {"robert"},
	"rob":     {"robert"},
	"bobby":   {"robert"},
	"jim":     {"james"},
	"jimmy":   {"james"},
	"joe":     {"joseph"},
	"joey":    {"joseph"},
	"mike":    {"michael"},
	"mikey":   {"michael"},
	"tom":     {"thomas"},
	"tommy":   {"thomas"},
	"dick":    {"richard"},
	"rick":    {"richard"},
	"rich":    {"richard"},
	"bill":    {"william"},
	"billy":   {"william"},
	"will":    {"william"},
	"charlie": {"charles"},
	"chuck":   {"charles"},
	"ed":      {"edward"},
	"eddie":   {"edward"},
	"ted":     {"edward"},
	"fred":    {"frederick"},
	"freddie": {"frederick"},
	"georgie": {"george"},
	"hank":    {"henry"},
	"jack":    {"john"},
	"johnny":  {"john"},
	"larry":   {"lawrence"},
	"leo":     {"leonard"},
	"len":     {"leonard"},
	"lenny":   {"leonard"},
	"matt":    {"matthew"},
	"matty":   {"matthew"},
	"nick":    {"nicholas"},
	"pete":    {"peter"},
	"sam":     {"samuel"},
	"sammy":   {"samuel"},
	"steve":   {"steven", "stephen"},
	"tony":    {"anthony"},
	"vince":   {"vincent"},
	"walt":    {"walter"},
	"zack":    {"zachary"},
}

var defaultMisspellings = map[string][]string{
	"michael":     {"micheal", "michal", "michail"},
	"jennifer":    {"jenifer", "jenniffer", "jeniffer"},
	"christopher": {"cristopher", "chrisopher", "christofer"},
	"stephanie":   {"stephany", "stefanie", "stefani"},
	"nicholas":    {"nickolas", "nicolas", "nick"},
	"katherine":   {"catherine", "kathryn", "cathryn"},
	"andrew":      {"andre", "andru"},
	"jessica":     {"jesica", "jessika", "jesika"},
	"daniel":      {"danial", "danielle", "dani"},
	"sarah":       {"sara", "sarra"},
}

var defaultStates = map[string]string{
	"al": "AL", "alabama": "AL",
	"ak": "AK", "alaska": "AK",
	"az": "AZ", "arizona": "AZ",
	"ar": "AR", "arkansas": "AR",
	"ca": "CA", "california": "CA",
	"co": "CO", "colorado": "CO",
	"ct": "CT", "connecticut": "CT",
	"de": "DE", "delaware": "DE",
	"fl": "FL", "florida": "FL",
	"ga": "GA", "georgia": "GA",
	"hi": "HI", "hawaii": "HI",
	"id": "ID", "idaho": "ID",
	"il": "IL", "illinois": "IL",
	"in": "IN", "indiana": "IN",
	"ia": "IA", "iowa": "IA",
	"ks": "KS", "kansas": "KS",
	"ky": "KY", "kentucky": "KY",
	"la": "LA", "louisiana": "LA",
	"me": "ME", "maine": "ME",
	"md": "MD", "maryland": "MD",
	"ma": "MA", "massachusetts": "MA",
	"mi": "MI", "michigan": "MI",
	"mn": "MN", "minnesota": "MN",
	"ms": "MS", "mississippi": "MS",
	"mo": "MO", "missouri": "MO",
	"mt": "MT", "montana": "MT",
	"ne": "NE", "nebraska": "NE",
	"nv": "NV", "nevada": "NV",
	"nh": "NH", "new hampshire": "NH",
	"nj": "NJ", "new jersey": "NJ",
	"nm": "NM", "new mexico": "NM",
	"ny": "NY", "new york": "NY",
	"nc": "NC", "north carolina": "NC",
	"nd": "ND", "north dakota": "ND",
	"oh": "OH", "ohio": "OH",
	"ok": "OK", "oklahoma": "OK",
	"or": "OR", "oregon": "OR",
	"pa": "PA", "pennsylvania": "PA",
	"ri": "RI", "rhode island": "RI",
	"sc": "SC", "south carolina": "SC",
	"sd": "SD", "south dakota": "SD",
	"tn": "TN", "tennessee": "TN",
	"tx": "TX", "texas": "TX",
	"ut": "UT", "utah": "UT",
	"vt": "VT", "vermont": "VT",
	"va": "VA", "virginia": "VA",
	"wa": "WA", "washington": "WA",
	"wv": "WV", "west virginia": "WV",
	"wi": "WI", "wisconsin": "WI",
	"wy": "WY", "wyoming": "WY",
	"dc": "DC", "district of columbia": "DC",
}

var defaultSuffixes = map[string]string{
	"avenue":    "ave",
	"ave":       "ave",
	"street":    "st",
	"st":        "st",
	"boulevard": "blvd",
	"blvd":      "blvd",
	"drive":     "dr",
	"dr":        "dr",
	"lane":      "ln",
	"ln":        "ln",
	"road":      "rd",
	"rd":        "rd",
	"court":     "ct",
	"ct":        "ct",
	"circle":    "cir",
	"cir":       "cir",
	"place":     "pl",
	"pl":        "pl",
	"parkway":   "pkwy",
	"pkwy":      "pkwy",
	"square":    "sq",
	"sq":        "sq",
	"terrace":   "ter",
	"ter":       "ter",
}
