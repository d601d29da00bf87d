// Package assets bundles the default documentation catalog and the
// documentation files it references.
package assets

import (
	"embed"
	"io/fs"
)

// CatalogFile is the name of the bundled catalog inside FS
const CatalogFile = "catalog.json"

// DocsDir is the directory inside FS holding the documentation files
const DocsDir = "docs"

//go:embed catalog.json docs/*.txt
var files embed.FS

// FS returns the bundled files
func FS() fs.FS {
	return files
}

// Docs returns the bundled documentation directory
func Docs() fs.FS {
	sub, err := fs.Sub(files, DocsDir)
	if err != nil {
		panic(err)
	}
	return sub
}
