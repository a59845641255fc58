package version

import (
	"fmt"

	"github.com/fatih/color"
)

const Version = "v0.1.0"

// asciiArtTpl returns the ASCII art of dbversion.
func asciiArtTpl() string {
	asciiArt := `
     ____  ____ _    __               _           
    / __ \/ __ ) |  / /__  __________(_)___  ____ 
   / / / / __  | | / / _ \/ ___/ ___/ / __ \/ __ \
  / /_/ / /_/ /| |/ /  __/ /  (__  ) / /_/ / / / /
 /_____/_____/ |___/\___/_/  /____/_/\____/_/ /_/ 
%s ` + Version

	asciiArt = asciiArt[1:] // This just removes the first newline character
	return color.New(color.FgCyan, color.Bold).Sprint(asciiArt)
}

// ServerVersion returns the server version of dbversiond.
func ServerVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Server")
}

// ClientVersion returns the version of the dbversion checker.
func ClientVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "CLI")
}
