// Package preset loads named truncation profiles from configuration files.
//
// A preset file maps names to truncation parameters. YAML, TOML and JSON are
// supported and chosen by file extension:
//
//	presets:
//	  feed:
//	    length: 200
//	    wordsafe: true
//	  card:
//	    length: 80
//	    appendix: " [more]"
//	    appendix_inside: true
//
// Fields left out of an entry keep the values of Default, so an explicit
// empty appendix is different from no appendix setting at all.
//
// # Store
//
// Store holds the presets of one file and can follow changes to it:
//
//	store, err := preset.NewStore("presets.yaml")
//	go store.Watch(ctx)
//	out, err := store.Apply("feed", markup)
//
// A reload that fails keeps the last good presets.
//
// # Schema
//
// Schema returns a JSON Schema for preset files, for editor validation.
package preset
