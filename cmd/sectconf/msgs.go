package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "A persistent sectioned key-value configuration store"
	MsgRootLong  = `sectconf manages named INI config files under a config directory.
Each file holds sections of key = value pairs; every write persists the
whole file immediately. The literal value "None" marks a key as unset.`
	MsgRegisterShort   = "Create or reopen a named config file"
	MsgUnregisterShort = "Delete a named config file"
	MsgConfigsShort    = "List all registered configs"
	MsgSetShort        = "Set a key in a section (omit the value to mark it unset)"
	MsgGetShort        = "Print the value of a key in a section"
	MsgUnsetShort      = "Remove a key from a section"
	MsgListShort       = "List the sections and keys of a config"
	MsgExportShort     = "Render a config in another format"
	MsgDocsShort       = "Show the config file format documentation"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Status messages
	MsgRegisteredFormat   = "Registered config '%s' at %s\n"
	MsgUnregisteredFormat = "Unregistered config '%s'\n"
	MsgSetFormat          = "Set %s.%s in config '%s'\n"
	MsgUnsetFormat        = "Removed %s.%s from config '%s'\n"
	MsgValueNone          = "(none)"
	MsgNoSections         = "No sections."
	MsgNoConfigs          = "No configs registered."

	// Error messages
	MsgErrValueNotSet = "%s.%s is not set in config %q"
	MsgErrNoConfig    = "config %q does not exist; run 'sectconf register %s' first"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNone    = "Store the key with no value"
	MsgFlagFormat  = "Export format: toml, yaml, json or xml"
	MsgFlagOutput  = "Write the export to a file instead of stdout"
)
