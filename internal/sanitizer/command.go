package sanitizer

import (
	"context"
	"fmt"
	"strings"
)

// ValidateCommand checks a shell command against the destructive command and operator deny-lists.
func (s *InputSanitizer) ValidateCommand(command string) (bool, string) {
	if command == "" {
		return false, MsgEmptyCommand
	}

	ctx := context.Background()
	lower := strings.ToLower(command)

	for _, bad := range destructiveCommands {
		if strings.Contains(lower, bad) {
			s.l.Errorf(ctx, "%s: security: blocked command %q", LogPrefixValidateCommand, bad)
			return false, fmt.Sprintf(MsgCommandBlocked, bad)
		}
	}

	launcher := strings.Contains(lower, launcherKeyword)
	for _, op := range chainingOperators {
		if !strings.Contains(command, op) {
			continue
		}
		if launcher && (op == ">" || op == "|") {
			continue
		}
		s.l.Warnf(ctx, "%s: suspicious operator %q", LogPrefixValidateCommand, op)
		return false, fmt.Sprintf(MsgOperatorBlocked, op)
	}

	return true, MsgCommandSafe
}
