package phonenumber

import "phonefmt/internal/digittemplate"

type compiledTemplate struct {
	components  digittemplate.Components
	options     Options
	trunkPrefix string
}

// templateCache holds every template of a table compiled once. It is never
// updated in place; a new table gets a new cache.
type templateCache map[Country][]compiledTemplate

func newTemplateCache(table Table) templateCache {
	cache := make(templateCache, len(table))
	for country, entry := range table {
		compiled := make([]compiledTemplate, 0, len(entry.Templates))
		for _, t := range entry.Templates {
			compiled = append(compiled, compiledTemplate{
				components:  digittemplate.Compile(t.Pattern),
				options:     t.Options,
				trunkPrefix: entry.TrunkPrefix,
			})
		}
		cache[country] = compiled
	}
	return cache
}
