package aliasfile

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ToUserFriendlyPath rewrites an absolute path under the home directory to
// its ~-prefixed form for display to the user.
func ToUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir
	if strings.HasPrefix(absPath, homeDir) {
		if absPath == homeDir {
			return "~"
		}
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
