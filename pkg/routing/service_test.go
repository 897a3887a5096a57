package routing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/algorithms"
	"github.com/dd0wney/cluso-routing/pkg/graph"
	"github.com/dd0wney/cluso-routing/pkg/logging"
	"github.com/dd0wney/cluso-routing/pkg/validation"
)

func newTestService(g *graph.Graph) *Service {
	return NewService(g, Options{
		Logger: logging.NewNopLogger(),
		Retry: RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
			Multiplier:     2.0,
		},
	})
}

func positiveGraph() *graph.Graph {
	g := graph.New()
	g.AddEdge("A", "B", 5)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	return g
}

// scriptedAlgorithm returns whatever its script says for each successive
// call, so failure modes the real algorithms never produce can be exercised.
type scriptedAlgorithm struct {
	calls  atomic.Int32
	script func(call int) (*algorithms.Result, error)
}

func (a *scriptedAlgorithm) Compute(ctx context.Context, g *graph.Graph, start, goal string) (*algorithms.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.script(int(a.calls.Add(1)))
}

func (a *scriptedAlgorithm) SupportsNegativeWeights() bool { return true }

func (a *scriptedAlgorithm) Name() string { return "scripted" }

func TestRouteSuccess(t *testing.T) {
	svc := newTestService(positiveGraph())

	resp := svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "req-1"})

	if resp.Status != StatusSuccess {
		t.Fatalf("status = %s, want %s (error: %s)", resp.Status, StatusSuccess, resp.ErrorMessage)
	}
	wantPath := []string{"A", "C", "B"}
	if len(resp.Path) != len(wantPath) {
		t.Fatalf("path = %v, want %v", resp.Path, wantPath)
	}
	for i, node := range wantPath {
		if resp.Path[i] != node {
			t.Fatalf("path = %v, want %v", resp.Path, wantPath)
		}
	}
	if resp.Cost == nil || *resp.Cost != 3 {
		t.Errorf("cost = %v, want 3", resp.Cost)
	}
	if resp.AlgorithmUsed != "Dijkstra" {
		t.Errorf("algorithm = %q, want Dijkstra", resp.AlgorithmUsed)
	}
	if resp.AttemptCount != 1 {
		t.Errorf("attempt count = %d, want 1", resp.AttemptCount)
	}
	if resp.RequestID != "req-1" {
		t.Errorf("request id = %q, want req-1", resp.RequestID)
	}
}

func TestRouteSelectsBellmanFordForNegativeWeights(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", -1)
	svc := newTestService(g)

	resp := svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "req-1"})

	if resp.Status != StatusSuccess {
		t.Fatalf("status = %s, want %s (error: %s)", resp.Status, StatusSuccess, resp.ErrorMessage)
	}
	if resp.AlgorithmUsed != "Bellman-Ford" {
		t.Errorf("algorithm = %q, want Bellman-Ford", resp.AlgorithmUsed)
	}
	if resp.Cost == nil || *resp.Cost != 1 {
		t.Errorf("cost = %v, want 1", resp.Cost)
	}
}

func TestRouteNegativeCycleRejectedByValidation(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", -2)
	g.AddEdge("C", "B", -2)
	svc := newTestService(g)

	resp := svc.Route(RouteRequest{Start: "A", Goal: "C", RequestID: "req-1"})

	if resp.Status != StatusNegativeCycle {
		t.Fatalf("status = %s, want %s", resp.Status, StatusNegativeCycle)
	}
	if !strings.Contains(resp.ErrorMessage, "negative-weight cycle") {
		t.Errorf("error message %q should name the negative cycle", resp.ErrorMessage)
	}
	if len(resp.Path) != 0 {
		t.Errorf("path = %v, want empty", resp.Path)
	}
}

func TestRouteNoPath(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)
	svc := newTestService(g)

	resp := svc.Route(RouteRequest{Start: "A", Goal: "D", RequestID: "req-1"})

	if resp.Status != StatusNoPath {
		t.Fatalf("status = %s, want %s", resp.Status, StatusNoPath)
	}
	if resp.ErrorMessage == "" {
		t.Error("no-path response should carry an error message")
	}
}

func TestRouteValidationErrorNamesMissingNodes(t *testing.T) {
	svc := newTestService(positiveGraph())

	resp := svc.Route(RouteRequest{Start: "X", Goal: "Y", RequestID: "req-1"})

	if resp.Status != StatusValidationError {
		t.Fatalf("status = %s, want %s", resp.Status, StatusValidationError)
	}
	if !strings.Contains(resp.ErrorMessage, "X") {
		t.Errorf("error message %q should name missing start node X", resp.ErrorMessage)
	}
	if !strings.Contains(resp.ErrorMessage, "Y") {
		t.Errorf("error message %q should name missing goal node Y", resp.ErrorMessage)
	}
}

func TestRouteValidationErrorOnEmptyGraph(t *testing.T) {
	svc := newTestService(graph.New())

	resp := svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "req-1"})

	if resp.Status != StatusValidationError {
		t.Fatalf("status = %s, want %s", resp.Status, StatusValidationError)
	}
	if !strings.Contains(resp.ErrorMessage, "no nodes") {
		t.Errorf("error message %q should report the empty graph", resp.ErrorMessage)
	}
}

func TestRouteStartEqualsGoal(t *testing.T) {
	svc := newTestService(positiveGraph())

	resp := svc.Route(RouteRequest{Start: "A", Goal: "A", RequestID: "req-1"})

	if resp.Status != StatusSuccess {
		t.Fatalf("status = %s, want %s (error: %s)", resp.Status, StatusSuccess, resp.ErrorMessage)
	}
	if len(resp.Path) != 1 || resp.Path[0] != "A" {
		t.Errorf("path = %v, want [A]", resp.Path)
	}
	if resp.Cost == nil || *resp.Cost != 0 {
		t.Errorf("cost = %v, want 0", resp.Cost)
	}
}

func TestRouteGeneratesRequestID(t *testing.T) {
	svc := newTestService(positiveGraph())

	resp := svc.Route(RouteRequest{Start: "A", Goal: "B"})

	if resp.RequestID == "" {
		t.Error("response should carry a generated request identifier")
	}
}

func TestRouteIdempotentReplay(t *testing.T) {
	svc := newTestService(positiveGraph())
	req := RouteRequest{Start: "A", Goal: "B", RequestID: "replay-1"}

	first := svc.Route(req)
	second := svc.Route(req)

	if first != second {
		t.Error("replay should return the stored response object unchanged")
	}

	stats := svc.Stats()
	if stats.RequestsTotal != 2 {
		t.Errorf("requests total = %d, want 2", stats.RequestsTotal)
	}
	if stats.SuccessTotal != 1 {
		t.Errorf("success total = %d, want 1: replays must not recount", stats.SuccessTotal)
	}
	if stats.CacheSize != 1 {
		t.Errorf("cache size = %d, want 1", stats.CacheSize)
	}
}

func TestRouteConcurrentSameIDComputesOnce(t *testing.T) {
	svc := newTestService(positiveGraph())

	algo := &scriptedAlgorithm{script: func(call int) (*algorithms.Result, error) {
		time.Sleep(20 * time.Millisecond)
		return &algorithms.Result{Path: []string{"A", "C", "B"}, Cost: 3}, nil
	}}
	svc.selectAlgorithm = func(*graph.Graph) algorithms.Algorithm { return algo }

	const goroutines = 10
	responses := make([]*RouteResponse, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i] = svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "shared"})
		}(i)
	}
	wg.Wait()

	if got := algo.calls.Load(); got != 1 {
		t.Errorf("algorithm ran %d times, want exactly 1", got)
	}
	for i := 1; i < goroutines; i++ {
		if responses[i] != responses[0] {
			t.Fatal("all callers should receive the same stored response")
		}
	}
	if responses[0].Status != StatusSuccess {
		t.Errorf("status = %s, want %s", responses[0].Status, StatusSuccess)
	}
}

func TestRouteTimeout(t *testing.T) {
	svc := newTestService(positiveGraph())

	resp := svc.Route(RouteRequest{
		Start:     "A",
		Goal:      "B",
		RequestID: "req-1",
		Timeout:   time.Nanosecond,
	})

	if resp.Status != StatusTimeout {
		t.Fatalf("status = %s, want %s", resp.Status, StatusTimeout)
	}
	if resp.ErrorMessage == "" {
		t.Error("timeout response should carry an error message")
	}
}

func TestRouteRetriesTransientFailures(t *testing.T) {
	svc := newTestService(positiveGraph())

	algo := &scriptedAlgorithm{script: func(call int) (*algorithms.Result, error) {
		if call < 3 {
			return nil, errors.New("transient failure")
		}
		return &algorithms.Result{Path: []string{"A", "B"}, Cost: 5}, nil
	}}
	svc.selectAlgorithm = func(*graph.Graph) algorithms.Algorithm { return algo }

	resp := svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "req-1"})

	if resp.Status != StatusSuccess {
		t.Fatalf("status = %s, want %s (error: %s)", resp.Status, StatusSuccess, resp.ErrorMessage)
	}
	if resp.AttemptCount != 3 {
		t.Errorf("attempt count = %d, want 3", resp.AttemptCount)
	}
	if got := algo.calls.Load(); got != 3 {
		t.Errorf("algorithm ran %d times, want 3", got)
	}
}

func TestRouteExhaustedRetriesReportsFailure(t *testing.T) {
	svc := newTestService(positiveGraph())

	algo := &scriptedAlgorithm{script: func(call int) (*algorithms.Result, error) {
		return nil, errors.New("persistent failure")
	}}
	svc.selectAlgorithm = func(*graph.Graph) algorithms.Algorithm { return algo }

	resp := svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "req-1"})

	if resp.Status != StatusFailure {
		t.Fatalf("status = %s, want %s", resp.Status, StatusFailure)
	}
	if resp.AttemptCount != 3 {
		t.Errorf("attempt count = %d, want 3", resp.AttemptCount)
	}
	if !strings.Contains(resp.ErrorMessage, "failed after 3 attempts") {
		t.Errorf("error message %q should report exhausted retries", resp.ErrorMessage)
	}
	if !strings.Contains(resp.ErrorMessage, "persistent failure") {
		t.Errorf("error message %q should include the last error", resp.ErrorMessage)
	}
}

func TestRouteNoPathIsNotRetried(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)
	svc := newTestService(g)

	algo := &scriptedAlgorithm{script: func(call int) (*algorithms.Result, error) {
		return nil, algorithms.ErrNoPath
	}}
	svc.selectAlgorithm = func(*graph.Graph) algorithms.Algorithm { return algo }

	resp := svc.Route(RouteRequest{Start: "A", Goal: "D", RequestID: "req-1"})

	if resp.Status != StatusNoPath {
		t.Fatalf("status = %s, want %s", resp.Status, StatusNoPath)
	}
	if got := algo.calls.Load(); got != 1 {
		t.Errorf("algorithm ran %d times, want 1: graph conditions do not change between attempts", got)
	}
}

func TestRouteCustomLimits(t *testing.T) {
	g := positiveGraph()
	svc := NewService(g, Options{
		Logger: logging.NewNopLogger(),
		Limits: validation.Limits{MaxNodes: 2, MaxEdges: 100},
	})

	resp := svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "req-1"})

	if resp.Status != StatusValidationError {
		t.Fatalf("status = %s, want %s", resp.Status, StatusValidationError)
	}
	if !strings.Contains(resp.ErrorMessage, "exceeds limit") {
		t.Errorf("error message %q should report the size limit", resp.ErrorMessage)
	}
}

func TestStatsTracksOutcomes(t *testing.T) {
	svc := newTestService(positiveGraph())

	svc.Route(RouteRequest{Start: "A", Goal: "B", RequestID: "ok-1"})
	svc.Route(RouteRequest{Start: "A", Goal: "D", RequestID: "ok-2"})
	svc.Route(RouteRequest{Start: "X", Goal: "B", RequestID: "bad-1"})

	stats := svc.Stats()
	if stats.RequestsTotal != 3 {
		t.Errorf("requests total = %d, want 3", stats.RequestsTotal)
	}
	if stats.SuccessTotal != 2 {
		t.Errorf("success total = %d, want 2", stats.SuccessTotal)
	}
	if stats.ErrorTotal != 1 {
		t.Errorf("error total = %d, want 1", stats.ErrorTotal)
	}
	if stats.SuccessRate < 0.66 || stats.SuccessRate > 0.67 {
		t.Errorf("success rate = %v, want ~0.667", stats.SuccessRate)
	}
}
