package main

import (
	"context"
	"log"

	"github.com/dbversion/dbversion/internal/dbversiond"
)

func main() {
	if err := dbversiond.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
