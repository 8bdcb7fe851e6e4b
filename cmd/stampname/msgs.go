package stampname

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rename files to a timestamp"
	MsgVersionShort    = "Print version information"
	MsgConfigShort     = "Print the effective settings"
	MsgConfigLong      = "Print the settings in effect after merging defaults, the settings file, STAMPNAME_* environment variables and overrides, in settings file format."
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDefaults = "Print the built-in defaults instead"

	// Status messages
	MsgErrorFormat   = "Error: %v"
	MsgIgnoredTokens = "Ignoring unrecognized parameters"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-help.txt
	msgUsageHelpRaw string
	MsgUsageHelp    = strings.TrimSpace(msgUsageHelpRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
