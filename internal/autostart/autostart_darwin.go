//go:build darwin

package autostart

import (
	"path/filepath"

	"howett.net/plist"
)

// launchAgent - содержимое plist для launchd.
type launchAgent struct {
	Label            string   `plist:"Label"`
	ProgramArguments []string `plist:"ProgramArguments"`
	RunAtLoad        bool     `plist:"RunAtLoad"`
	KeepAlive        bool     `plist:"KeepAlive"`
}

// LaunchAgent в ~/Library/LaunchAgents.
func entryPath(home string) string {
	return filepath.Join(home, "Library", "LaunchAgents", Label+".plist")
}

func render(args []string) ([]byte, error) {
	return plist.MarshalIndent(launchAgent{
		Label:            Label,
		ProgramArguments: args,
		RunAtLoad:        true,
		KeepAlive:        true,
	}, plist.XMLFormat, "    ")
}
