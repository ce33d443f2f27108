// Package jsonfile persists the record document as a single pretty-printed
// JSON file. The whole file is read on load and rewritten on every save.
package jsonfile
