package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/dbversion/dbversion/internal/version"
)

// Config represents the configuration for the dbversion checker.
type Config struct {
	DatabaseURL string `arg:"--database-url,env:DATABASE_URL" help:"Database connection string, handed to the driver as is"`
	Details     bool   `arg:"--details" help:"Print a table with the outcome, the value and the elapsed time"`
	NoColor     bool   `arg:"--no-color" help:"Disable colored output, NO_COLOR is honored too"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ClientVersion())
}

// MustParse parses the configuration from the command line arguments. It
// returns a Config struct or exits the program with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	return cfg
}
