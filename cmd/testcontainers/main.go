// Standalone runner for the integration test database.
// Starts the MariaDB testcontainer and keeps it alive until interrupted,
// which is handy for running the integration tests from an editor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vojtechokenka/nokturo/tests/helpers"
)

func main() {
	envFilename := flag.String("f", "", "path to a .env file to load before starting")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: testcontainers [-f ENV_FILE]

Starts the nokturo integration test database and blocks until SIGINT/SIGTERM.
Prints the DB_HOST/DB_PORT the tests should connect to.
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *envFilename != "" {
		if err := godotenv.Load(*envFilename); err != nil {
			log.Fatalf("Failed to load %s: %v", *envFilename, err)
		}
		log.Printf("Loaded environment from %s", *envFilename)
	}

	containers, err := helpers.CreateAllTestContainers(nil)
	if err != nil {
		log.Fatalf("Failed to start test containers: %v", err)
	}

	fmt.Printf("export DB_HOST=%s\nexport DB_PORT=%s\n", containers.DBHost, containers.DBPort)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs

	log.Printf("Received %v, terminating test containers", sig)
	containers.Terminate(nil)
}
