package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/launchts/launchts/internal/defs"
)

// UserAgentEnv is set by npm, yarn and pnpm when they launch a binary.
const UserAgentEnv = "npm_config_user_agent"

// lockFiles maps lock files to package managers, in precedence order.
var lockFiles = []struct {
	name string
	pm   PackageManager
}{
	{defs.PNPMLock, PNPM},
	{defs.YarnLock, Yarn},
	{defs.NPMLock, NPM},
}

// DetectPackageManager infers the ambient package manager. The user agent
// prefix wins; otherwise lock files in dir are checked (pnpm > yarn > npm);
// otherwise the default member is returned.
func DetectPackageManager(userAgent, dir string) PackageManager {
	for _, pm := range []PackageManager{PNPM, Yarn, NPM} {
		if strings.HasPrefix(userAgent, string(pm)) {
			return pm
		}
	}
	if dir != "" {
		for _, lf := range lockFiles {
			if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
				return lf.pm
			}
		}
	}
	return PackageManagers[0]
}
