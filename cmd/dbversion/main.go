package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dbversion/dbversion/internal/dbversion"
)

func main() {
	err := dbversion.Run(context.Background())
	if errors.Is(err, dbversion.ErrUnavailable) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
