// Package fileprovider loads translation patterns from an fs.FS and serves
// them through the i18n.Provider contract.
//
// The filesystem root must contain one directory per locale, with any number
// of namespace files inside. Supported formats are JSON, YAML and TOML:
//
//	en/common.json
//	en/errors.yaml
//	de/common.toml
//
// Nested keys are flattened with dots and prefixed with the namespace, so
// the file en/common.json containing {"buttons": {"save": "Save"}} yields
// the translation id "common.buttons.save" for locale "en".
//
// All files are read once at construction; lookups afterwards are in-memory
// map reads, safe for concurrent use. Combine with os.DirFS for on-disk
// catalogs or embed.FS for compiled-in ones.
package fileprovider
