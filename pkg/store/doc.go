// Package store implements the in-memory sectioned key-value store that
// backs a config file.
//
// The store is an ordered mapping of section name to key-value pairs, with
// INI text as its wire format: section order and key order are preserved
// across encode/decode cycles. All values are stored as strings. The literal
// token "None" marks an absent value: setting a key to nil stores the token,
// and reading a key whose stored value equals the token reports the key as
// absent. This string-only contract is deliberate; callers that set a
// non-string value get its string form back.
package store
