package geo

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"geobattle-service/internal/domain"
)

// MaxLevel is the number of difficulty tiers a game cycles through.
const MaxLevel = 4

// Generator produces the question sequence for one game: each tier's
// pool is shuffled uniformly and the first perTier entries are taken, so
// a game never repeats a target term within a tier. Tiers are emitted in
// ascending level order.
type Generator struct {
	perTier int
	rnd     *rand.Rand
}

// NewGenerator returns a generator seeded from the wall clock.
func NewGenerator(perTier int) *Generator {
	return NewGeneratorWithSource(perTier, rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource allows deterministic sequences in tests.
func NewGeneratorWithSource(perTier int, src rand.Source) *Generator {
	if perTier < 1 {
		perTier = 1
	}
	return &Generator{perTier: perTier, rnd: rand.New(src)}
}

// term is a prompt-bearing name and the region it resolves to.
type term struct {
	name   string
	region string
}

// Generate builds a fresh question list, levels 1 through 4 in order.
func (g *Generator) Generate() []domain.Question {
	questions := make([]domain.Question, 0, MaxLevel*g.perTier)
	for level := 1; level <= MaxLevel; level++ {
		for _, t := range g.pick(poolForLevel(level)) {
			questions = append(questions, domain.Question{
				Level:    level,
				Text:     promptFor(level, t.name),
				Target:   t.region,
				Attempts: make(map[string]int),
			})
		}
	}
	return questions
}

// pick shuffles the pool and takes the first perTier terms (or the whole
// pool when it is smaller).
func (g *Generator) pick(pool []term) []term {
	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	k := g.perTier
	if k > len(pool) {
		k = len(pool)
	}
	return pool[:k]
}

func poolForLevel(level int) []term {
	switch level {
	case 1:
		pool := make([]term, 0, len(Regions))
		for _, r := range Regions {
			pool = append(pool, term{name: r, region: r})
		}
		return pool
	case 2:
		return poolFromMap(Capitals)
	case 3:
		return poolFromMap(Provinces)
	default:
		return poolFromMap(Comuni)
	}
}

// poolFromMap flattens a name->region map into a sorted slice so the only
// randomness in Generate comes from the injected source.
func poolFromMap(m map[string]string) []term {
	pool := make([]term, 0, len(m))
	for name, region := range m {
		pool = append(pool, term{name: name, region: region})
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].name < pool[j].name })
	return pool
}

func promptFor(level int, name string) string {
	switch level {
	case 1:
		return fmt.Sprintf("Dove si trova la regione **%s**?", name)
	case 2:
		return fmt.Sprintf("In quale regione si trova **%s**?", name)
	case 3:
		return fmt.Sprintf("In quale regione si trova la provincia di **%s**?", name)
	default:
		return fmt.Sprintf("In quale regione si trova il comune di **%s**?", name)
	}
}

// LevelRules returns the one-time banner text shown when a game first
// reaches a level. Clients display and dismiss it on their own.
func LevelRules(level int) string {
	switch level {
	case 1:
		return "Livello 1: trova la regione indicata sulla mappa."
	case 2:
		return "Livello 2: individua la regione del capoluogo indicato."
	case 3:
		return "Livello 3: individua la regione della provincia indicata."
	case 4:
		return "Livello 4: individua la regione del comune indicato."
	default:
		return ""
	}
}
