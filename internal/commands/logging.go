package commands

import (
	"strings"

	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

const commandModuleRoot = "jewelcms.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriching
// it with consistent structured fields so executions are easy to correlate.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
