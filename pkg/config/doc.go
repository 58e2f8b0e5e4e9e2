// Package config implements the persistent sectioned configuration store.
//
// A Manager owns one config file and its in-memory store. A Config is the
// root handle over a manager; Config.Section yields a Section view for any
// name, whether or not it exists yet. Sections come into being on first
// write. Every Section.Set persists the whole file immediately; there is no
// batching and no dirty tracking.
//
// Values are strings. Setting a key to nil stores the literal token "None",
// and reading a missing section, a missing key, or a stored "None" all look
// the same to the caller: ok == false. See the store package for the
// underlying contract.
//
// The package is not safe for concurrent use, and nothing guards against
// another process writing the same file. Saves are atomic at the file level
// (see filesystem.NewOS), so a crashed writer cannot leave a torn file, but
// the last writer wins.
package config
