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

// Domain field helpers for the evaluation pipeline

func Component(name string) Field {
	return String("component", name)
}

func NodeName(name string) Field {
	return String("node", name)
}

func PortName(p string) Field {
	return String("port", p)
}

func Channel(ch int) Field {
	return Int("channel", ch)
}

func GainDB(g float64) Field {
	return Float64("gain_db", g)
}

func PowerDBm(p float64) Field {
	return Float64("power_dbm", p)
}

func OSNRdB(v float64) Field {
	return Float64("osnr_db", v)
}

func Verdict(v string) Field {
	return String("verdict", v)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
