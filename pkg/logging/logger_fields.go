package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

// Field helpers for the routing request lifecycle. Every lifecycle event
// carries RequestID so a full request history can be reconstructed from logs.
func RequestID(id string) Field {
	return String("request_id", id)
}

func Event(name string) Field {
	return String("event", name)
}

func StartNode(node string) Field {
	return String("start", node)
}

func GoalNode(node string) Field {
	return String("goal", node)
}

func Algorithm(name string) Field {
	return String("algorithm", name)
}

func Status(status string) Field {
	return String("status", status)
}

func Attempt(n int) Field {
	return Int("attempt", n)
}

func Cost(c float64) Field {
	return Float64("cost", c)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
