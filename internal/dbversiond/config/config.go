package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/dbversion/dbversion/internal/version"
)

// Config represents the configuration for dbversiond.
type Config struct {
	DatabaseURL string `arg:"--database-url,env:DATABASE_URL" help:"Database connection string, handed to the driver as is"`
	ListenAddr  string `arg:"--listen-addr,env:DBVERSIOND_LISTEN_ADDR" help:"Address for the server to listen on" default:"0.0.0.0"`
	ListenPort  string `arg:"--listen-port,env:DBVERSIOND_LISTEN_PORT" help:"Port for the server to listen on" default:"5000"`
	Debug       bool   `arg:"--debug,env:DBVERSIOND_DEBUG" help:"Log every request and print stack traces of recovered panics" default:"true"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ServerVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
//
// The database URL is not validated, a bad one only shows up when a
// request tries to connect.
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

	if err := validateListenAddr(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}

	if err := validateListenPort(cfg.ListenPort); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validateListenAddr validates if addr is a valid ip address.
func validateListenAddr(addr string) error {
	re := regexp.MustCompile(`^([0-9]{1,3}\.){3}[0-9]{1,3}$`)
	if !re.MatchString(addr) {
		return errors.New("invalid listen address")
	}
	return nil
}

// validateListenPort validates if port is a valid port number.
func validateListenPort(port string) error {
	re := regexp.MustCompile(`^\d{1,5}$`)
	if !re.MatchString(port) {
		return errors.New("invalid listen port, valid values are 1-65535")
	}
	return nil
}

var passwordKV = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)

// RedactDatabaseURL masks the password of a connection string so it can be
// logged. Both the URL form and the key=value form are handled.
func RedactDatabaseURL(databaseURL string) string {
	if !strings.Contains(databaseURL, "://") {
		return passwordKV.ReplaceAllString(databaseURL, "${1}xxxxx")
	}

	u, err := url.Parse(databaseURL)
	if err != nil {
		return "xxxxx"
	}

	query := u.Query()
	if query.Has("password") {
		query.Set("password", "xxxxx")
		u.RawQuery = query.Encode()
	}
	return u.Redacted()
}
