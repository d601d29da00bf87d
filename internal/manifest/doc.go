// Package manifest loads a project's package.json and enumerates the
// dependencies it declares.
//
// # Manifest Format
//
// Only the three dependency classes are read; everything else in the file
// is ignored:
//
//	{
//	  "dependencies":     { "zod": "^3.0.0" },
//	  "devDependencies":  { "vitest": "^1.0.0" },
//	  "peerDependencies": { "react": ">=18" }
//	}
//
// Version constraints are kept verbatim and never interpreted.
//
// # Usage
//
//	m, err := manifest.Load("package.json")
//	if err != nil {
//	    return err // wraps domain.ErrManifestUnreadable
//	}
//	for _, name := range m.AllNames() {
//	    // runtime first, then development, then peer
//	}
//
// # Error Handling
//
// Every failure wraps domain.ErrManifestUnreadable together with one of:
//   - ErrFileNotFound: the manifest file does not exist
//   - ErrInvalidFormat: the file is not a JSON object
//   - ErrInvalidSection: a dependency section is not a string map
package manifest
