// routectl runs shortest-path queries either against a local graph file or
// a running routing daemon.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/graph"
	"github.com/dd0wney/cluso-routing/pkg/logging"
	"github.com/dd0wney/cluso-routing/pkg/routing"
)

func main() {
	graphFile := flag.String("graph", "", "Graph edge-list file for local queries")
	serverURL := flag.String("server", "", "Routing daemon URL (e.g. http://localhost:8080)")
	start := flag.String("start", "", "Start node")
	goal := flag.String("goal", "", "Goal node")
	requestID := flag.String("request-id", "", "Idempotency key (optional)")
	timeout := flag.Duration("timeout", 5*time.Second, "Computation timeout")
	verbose := flag.Bool("v", false, "Log lifecycle events to stderr")
	flag.Parse()

	if *start == "" || *goal == "" {
		log.Fatal("--start and --goal are required")
	}

	var resp *routing.RouteResponse
	switch {
	case *serverURL != "":
		resp = routeRemote(*serverURL, *start, *goal, *requestID, *timeout)
	case *graphFile != "":
		resp = routeLocal(*graphFile, *start, *goal, *requestID, *timeout, *verbose)
	default:
		log.Fatal("either --graph or --server is required")
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
	fmt.Println(string(out))

	if resp.Status != routing.StatusSuccess {
		os.Exit(1)
	}
}

func routeLocal(file, start, goal, requestID string, timeout time.Duration, verbose bool) *routing.RouteResponse {
	g, err := graph.LoadFile(file)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	logger := logging.NewNopLogger()
	if verbose {
		logger = logging.NewJSONLogger(os.Stderr, logging.DebugLevel)
	}

	svc := routing.NewService(g, routing.Options{Logger: logger})
	return svc.Route(routing.RouteRequest{
		Start:     start,
		Goal:      goal,
		RequestID: requestID,
		Timeout:   timeout,
	})
}

func routeRemote(serverURL, start, goal, requestID string, timeout time.Duration) *routing.RouteResponse {
	payload, err := json.Marshal(map[string]any{
		"start":             start,
		"goal":              goal,
		"requestIdentifier": requestID,
		"timeoutSeconds":    timeout.Seconds(),
	})
	if err != nil {
		log.Fatalf("Failed to encode request: %v", err)
	}

	client := &http.Client{Timeout: timeout + 5*time.Second}
	httpResp, err := client.Post(serverURL+"/route", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer httpResp.Body.Close()

	var resp routing.RouteResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		log.Fatalf("Failed to decode response: %v", err)
	}
	return &resp
}
