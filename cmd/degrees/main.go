package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vanshika/degrees/backend/internal/config"
	"github.com/vanshika/degrees/backend/internal/dataset"
	"github.com/vanshika/degrees/backend/internal/logging"
	"github.com/vanshika/degrees/backend/internal/resolver"
	"github.com/vanshika/degrees/backend/internal/search"
	"github.com/vanshika/degrees/backend/internal/service"
)

func main() {
	var (
		dataDir  = flag.String("data", "small", "directory containing people.csv, movies.csv and stars.csv")
		frontier = flag.String("frontier", "fifo", "frontier removal policy: fifo (shortest paths) or lifo")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging)

	policy, err := search.ParsePolicy(*frontier)
	if err != nil {
		logger.Error("invalid frontier policy", "error", err)
		os.Exit(1)
	}

	fmt.Println("Loading data...")
	ds, _, err := dataset.Load(*dataDir, logger)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "dir", *dataDir)
		os.Exit(1)
	}
	fmt.Println("Data loaded.")

	engine := search.New(ds, search.WithPolicy(policy))
	svc := service.NewDegreesService(ds, engine)
	reader := bufio.NewReader(os.Stdin)

	sourceID, err := resolvePerson(reader, svc.Resolver(), "Name: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Person not found.")
		os.Exit(1)
	}
	targetID, err := resolvePerson(reader, svc.Resolver(), "Name: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Person not found.")
		os.Exit(1)
	}

	conn, connected, err := svc.ConnectionByID(context.Background(), sourceID, targetID)
	if err != nil {
		logger.Error("search failed", "error", err)
		os.Exit(1)
	}
	if !connected {
		fmt.Println("Not connected.")
		return
	}

	fmt.Printf("%d degrees of separation.\n", conn.Degrees)
	previous := conn.SourceName
	for i, step := range conn.Steps {
		fmt.Printf("%d: %s and %s starred in %s\n", i+1, previous, step.PersonName, step.MovieTitle)
		previous = step.PersonName
	}
}

// resolvePerson prompts for a name and, when several people share it, lists
// the candidates and asks for the intended person ID.
func resolvePerson(reader *bufio.Reader, r *resolver.Resolver, prompt string) (string, error) {
	name, err := readLine(reader, prompt)
	if err != nil {
		return "", err
	}

	personID, err := r.Resolve(name)
	if err == nil {
		return personID, nil
	}

	var ambiguity *resolver.AmbiguityError
	if !errors.As(err, &ambiguity) {
		return "", err
	}

	fmt.Printf("Which '%s'?\n", name)
	for _, candidate := range ambiguity.Candidates {
		fmt.Printf("ID: %s, Name: %s, Birth: %s\n", candidate.ID, candidate.Name, candidate.Birth)
	}

	chosen, err := readLine(reader, "Intended Person ID: ")
	if err != nil {
		return "", err
	}
	return r.Choose(name, chosen)
}

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
