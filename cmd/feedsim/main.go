// feedsim serves a fake sensor feed: a JSON document with field1 and
// field2 values that drift randomly and occasionally spike past the
// default alert thresholds.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"
)

type simulator struct {
	mu     sync.Mutex
	field1 float64
	field2 float64
}

func (s *simulator) step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.field1 += (rand.Float64() - 0.5) * 40
	s.field2 += (rand.Float64() - 0.5) * 80
	if s.field1 < 0 {
		s.field1 = 0
	}
	if s.field2 < 0 {
		s.field2 = 0
	}

	// 10% chance of a pollution spike above both thresholds
	if rand.Float64() < 0.1 {
		s.field1 = 751 + rand.Float64()*200
		s.field2 = 1501 + rand.Float64()*400
	}
}

func (s *simulator) handle(w http.ResponseWriter, _ *http.Request) {
	s.step()

	s.mu.Lock()
	doc := map[string]string{
		"field1": fmt.Sprintf("%.0f", s.field1),
		"field2": fmt.Sprintf("%.0f", s.field2),
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		log.Printf("encode reading: %v", err)
	}
}

func main() {
	port := 9000
	if len(os.Args) > 1 {
		p, err := strconv.Atoi(os.Args[1])
		if err != nil || p <= 0 {
			fmt.Fprintf(os.Stderr, "usage: %s [port]\n", os.Args[0])
			os.Exit(1)
		}
		port = p
	}

	sim := &simulator{field1: 400, field2: 900}

	http.HandleFunc("/feed", sim.handle)

	log.Printf("serving simulated feed on :%d/feed", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil); err != nil {
		log.Fatalf("server: %v", err)
	}
}
