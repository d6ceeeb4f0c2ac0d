package player

import "strings"

var nicknames = map[string][]string{
	"richard":     {"rich", "rick", "ricky", "dick"},
	"michael":     {"mike", "mikey", "mick"},
	"william":     {"will", "bill", "billy", "willy"},
	"robert":      {"rob", "bob", "bobby", "robbie"},
	"james":       {"jim", "jimmy", "jamie"},
	"joseph":      {"joe", "joey"},
	"thomas":      {"tom", "tommy"},
	"christopher": {"chris", "cj"},
	"matthew":     {"matt", "matty"},
	"anthony":     {"tony", "ant"},
	"daniel":      {"dan", "danny"},
	"david":       {"dave", "davey"},
	"edward":      {"ed", "eddie", "ted", "teddy"},
	"patrick":     {"pat", "patty", "paddy"},
	"stephen":     {"steve", "stevie"},
	"steven":      {"steve", "stevie"},
	"andrew":      {"andy", "drew"},
	"nicholas":    {"nick", "nicky", "nico"},
	"jonathan":    {"jon", "jonny", "john"},
	"john":        {"jon", "johnny", "jack"},
	"benjamin":    {"ben", "benny"},
	"alexander":   {"alex", "al"},
	"timothy":     {"tim", "timmy"},
	"charles":     {"charlie", "chuck", "chas"},
	"kenneth":     {"ken", "kenny"},
	"gregory":     {"greg", "gregg"},
	"jeffrey":     {"jeff", "geoff"},
	"ronald":      {"ron", "ronnie"},
	"donald":      {"don", "donnie"},
	"raymond":     {"ray"},
	"lawrence":    {"larry", "lars"},
	"gerald":      {"gerry", "jerry"},
	"samuel":      {"sam", "sammy"},
	"peter":       {"pete", "petey"},
	"henry":       {"hank", "harry"},
	"douglas":     {"doug", "dougie"},
	"dennis":      {"denny"},
	"harold":      {"hal", "harry"},
	"eugene":      {"gene"},
	"phillip":     {"phil"},
	"vincent":     {"vince", "vinny"},
	"walter":      {"walt", "wally"},
	"frederick":   {"fred", "freddy", "freddie"},
	"albert":      {"al", "bert", "bertie"},
	"arthur":      {"art", "artie"},
	"nathan":      {"nate", "nat"},
	"zachary":     {"zach", "zack"},
	"jacob":       {"jake"},
	"joshua":      {"josh"},
	"brian":       {"bri"},
	"kevin":       {"kev"},
	"jason":       {"jay"},
	"justin":      {"just"},
	"brandon":     {"brand"},
	"jessica":     {"jess", "jessie"},
	"jennifer":    {"jen", "jenny"},
	"elizabeth":   {"liz", "lizzy", "beth", "betty", "eliza"},
	"katherine":   {"kate", "kathy", "katie", "kat"},
	"catherine":   {"kate", "cathy", "katie", "cat"},
	"margaret":    {"maggie", "meg", "peggy", "marge"},
	"patricia":    {"pat", "patty", "trish"},
	"rebecca":     {"becky", "becca"},
	"christine":   {"chris", "chrissy", "tina"},
	"christina":   {"chris", "chrissy", "tina"},
	"stephanie":   {"steph", "stephie"},
	"samantha":    {"sam", "sammy"},
	"alexandra":   {"alex", "lexi"},
	"victoria":    {"vicky", "tori"},
	"natalie":     {"nat"},
}

// NormalizeName lower-cases and trims a name for comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NameVariants returns the first name plus every formal name or nickname
// it is known to stand for.
func NameVariants(firstName string) map[string]struct{} {
	name := NormalizeName(firstName)
	out := map[string]struct{}{name: {}}
	for _, nick := range nicknames[name] {
		out[nick] = struct{}{}
	}
	for formal, nicks := range nicknames {
		for _, nick := range nicks {
			if nick != name {
				continue
			}
			out[formal] = struct{}{}
			for _, other := range nicks {
				out[other] = struct{}{}
			}
			break
		}
	}
	return out
}

// SameFirstName reports whether a and b are variants of one another.
func SameFirstName(a, b string) bool {
	left := NameVariants(a)
	for variant := range NameVariants(b) {
		if _, ok := left[variant]; ok {
			return true
		}
	}
	return false
}
