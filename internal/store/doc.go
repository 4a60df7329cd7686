// Package store provides file-based persistence for milsabores.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. Every store guards its files with an
// internal mutex, so a read-modify-write of a whole file is one critical
// section. Files are replaced atomically (temp file, then rename). Stored
// files live under the configured home directory.
//
// The package includes:
//   - Registered users (UserFileStore)
//   - Key-value preferences on disk (PrefsFileStore) and in memory (MemoryPrefs)
//   - The logged-in user marker (SessionPrefStore)
//   - Profile photo locators (PhotoPrefStore)
//   - The bundled product catalog (CatalogFileStore)
//   - Shopping carts (CartFileStore)
//
// A SQLite-backed Preferences implementation lives in the sqlite subpackage.
package store
