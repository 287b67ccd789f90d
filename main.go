package main

import (
	"flag"
	"log"

	"github.com/sixtosix/sixtosix-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the API server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
	if !*shouldRunMigrations && !*shouldRunServer {
		log.Fatal("expected at least one of -migrations or -server")
	}
}
