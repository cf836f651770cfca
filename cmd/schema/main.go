// Command schema administers the application tables: it creates any that
// are missing, or drops one table (or all of them) on request.  Drops are
// unguarded, matching what the managed environment allows an operator to do
// directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rghazali/fitfinder/internal/config"
	"github.com/rghazali/fitfinder/internal/database"
)

func main() {
	drop := flag.String("drop", "", "drop one managed table by name, or 'all'")
	list := flag.Bool("list", false, "print the managed table names and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(database.TableNames(), "\n"))
		return
	}

	cfg := config.Load()
	db, err := database.Open(database.DSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch {
	case *drop == "":
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatal(err)
		}
		log.Printf("schema ensured")
	case *drop == "all":
		if err := database.DropAll(ctx, db); err != nil {
			log.Fatal(err)
		}
		log.Printf("all tables dropped")
	default:
		if err := database.DropTable(ctx, db, *drop); err != nil {
			log.Fatal(err)
		}
		log.Printf("table %s dropped", *drop)
	}
}
