package webform

// InterestAirport is the contact form option that reveals the nested
// airport pickup/drop-off block
const InterestAirport = "Airport Pickups & Drops"

// packageAliases maps package display names used on the listing page to the
// option labels the contact form actually offers. The two sets drifted apart
// as packages were renamed; new mismatches get an entry here.
var packageAliases = map[string]string{
	"Sigiriya (Dambulla) & Minneriya": "Sigiriya & Dambulla",
	"Ella & Nine Arches Bridge":       "Ella Highlands",
	"Galle Fort & Bentota Beaches":    "Galle & Bentota",
}

// NormalizePackageName maps a listing-page package name to its contact form
// option label. Names without an alias are returned unchanged.
func NormalizePackageName(name string) string {
	if alias, ok := packageAliases[name]; ok {
		return alias
	}
	return name
}
