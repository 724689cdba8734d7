// README: Airport table with fixed transfer prices and text matching.
package pricing

import (
	"strings"
	"unicode"
)

// AirportTable is read-only after construction and safe for concurrent use.
type AirportTable struct {
	entries []Airport
}

// NewAirportTable builds a table. Entry order is the match priority.
func NewAirportTable(entries []Airport) *AirportTable {
	out := make([]Airport, len(entries))
	for i, e := range entries {
		e.Code = strings.ToUpper(e.Code)
		aliases := make([]string, 0, len(e.Aliases)+1)
		aliases = append(aliases, strings.ToLower(e.DisplayName))
		for _, a := range e.Aliases {
			aliases = append(aliases, strings.ToLower(a))
		}
		e.Aliases = aliases
		out[i] = e
	}
	return &AirportTable{entries: out}
}

var defaultAirports = NewAirportTable([]Airport{
	{Code: "FCO", DisplayName: "Roma Fiumicino", BasePriceEur: 45, Aliases: []string{"fiumicino"}},
	{Code: "CIA", DisplayName: "Roma Ciampino", BasePriceEur: 40, Aliases: []string{"ciampino"}},
	{Code: "LIN", DisplayName: "Milano Linate", BasePriceEur: 35, Aliases: []string{"linate"}},
	{Code: "MXP", DisplayName: "Milano Malpensa", BasePriceEur: 55, Aliases: []string{"malpensa"}},
	{Code: "BGY", DisplayName: "Milano Bergamo", BasePriceEur: 50, Aliases: []string{"orio al serio", "aeroporto di bergamo"}},
	{Code: "NAP", DisplayName: "Napoli Capodichino", BasePriceEur: 25, Aliases: []string{"capodichino", "aeroporto di napoli"}},
	{Code: "CTA", DisplayName: "Catania Fontanarossa", BasePriceEur: 30, Aliases: []string{"fontanarossa", "aeroporto di catania"}},
	{Code: "PMO", DisplayName: "Palermo Punta Raisi", BasePriceEur: 35, Aliases: []string{"punta raisi", "falcone borsellino", "aeroporto di palermo"}},
	{Code: "BLQ", DisplayName: "Bologna Marconi", BasePriceEur: 30, Aliases: []string{"aeroporto di bologna"}},
	{Code: "FLR", DisplayName: "Firenze Peretola", BasePriceEur: 25, Aliases: []string{"peretola", "aeroporto di firenze"}},
	{Code: "VCE", DisplayName: "Venezia Marco Polo", BasePriceEur: 40, Aliases: []string{"aeroporto di venezia"}},
	{Code: "TSF", DisplayName: "Venezia Treviso", BasePriceEur: 45, Aliases: []string{"aeroporto di treviso", "treviso canova"}},
	{Code: "BRI", DisplayName: "Bari Palese", BasePriceEur: 25, Aliases: []string{"aeroporto di bari"}},
	{Code: "CRV", DisplayName: "Crotone Sant'Anna", BasePriceEur: 30, Aliases: []string{"aeroporto di crotone"}},
	{Code: "GOA", DisplayName: "Genova Cristoforo Colombo", BasePriceEur: 35, Aliases: []string{"aeroporto di genova"}},
})

// DefaultAirports returns the process-wide airport table.
func DefaultAirports() *AirportTable {
	return defaultAirports
}

// Lookup returns the first entry (in table order) whose code appears in text as a
// standalone token or whose alias appears as a substring. Matching ignores case.
func (t *AirportTable) Lookup(text string) (Airport, bool) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return Airport{}, false
	}
	tokens := codeTokens(text)
	for _, e := range t.entries {
		if _, ok := tokens[e.Code]; ok {
			return e, true
		}
		for _, alias := range e.Aliases {
			if alias != "" && strings.Contains(lower, alias) {
				return e, true
			}
		}
	}
	return Airport{}, false
}

// ByCode finds an entry by its exact code (any case).
func (t *AirportTable) ByCode(code string) (Airport, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, e := range t.entries {
		if e.Code == code {
			return e, true
		}
	}
	return Airport{}, false
}

// Search returns entries whose code or display name contains query, in table order.
// Used for address suggestions, so partial input like "mal" or "fc" matches.
func (t *AirportTable) Search(query string) []Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Airport
	for _, e := range t.entries {
		if strings.Contains(strings.ToLower(e.Code), q) || strings.Contains(strings.ToLower(e.DisplayName), q) {
			out = append(out, e)
		}
	}
	return out
}

func codeTokens(text string) map[string]struct{} {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[strings.ToUpper(f)] = struct{}{}
	}
	return tokens
}
