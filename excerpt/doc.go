// Package excerpt renders text templates whose helpers truncate markup.
//
// Templates use Go template syntax. Markup helpers keep tags balanced, so a
// teaser cut from an article body is still valid markup:
//
//	{{shorten .Body 120}}
//	{{shortenWords .Body 60}}
//	{{preset "card" .Body}}
//
// # Built-in Functions
//
//   - shorten(markup string, n int) string - Truncate markup to n visible units
//   - shortenWords(markup string, n int) string - As shorten, cut at a word boundary
//   - preset(name, markup string) (string, error) - Truncate with a named preset
//   - stripTags(markup string) string - Remove tags, keep text
//   - visibleLength(markup string) int - Count visible units
//   - upper, lower, trim - String case and whitespace helpers
//   - default(val, defaultVal any) any - Return default if val is nil/empty
//
// The preset helper needs a store:
//
//	store, err := preset.NewStore("presets.yaml")
//	engine := excerpt.NewEngine(excerpt.WithPresets(store))
//	out, err := engine.Render(`{{preset "teaser" .Body}}`, post)
package excerpt
