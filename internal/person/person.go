package person

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var (
	FirstNames   = []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack"}
	LastNames    = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	EmailDomains = []string{"example.com", "test.com", "demo.org", "sample.net"}
)

// Generator produces random demo names and email addresses
type Generator struct {
	lock sync.Mutex
	rand *rand.Rand
}

// NewGenerator returns a generator using the given random source. A nil source is seeded from the clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rand: rand.New(src)}
}

// Generate returns a name on the form "<First> <Last>" and an email derived from it
func (g *Generator) Generate() (name, email string) {
	g.lock.Lock()
	first := pick(g.rand, FirstNames)
	last := pick(g.rand, LastNames)
	domain := pick(g.rand, EmailDomains)
	g.lock.Unlock()

	name = first + " " + last
	return name, LocalPart(name) + "@" + domain
}

// LocalPart returns the email local-part for a generated name
func LocalPart(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", ".")
}

func pick(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}
