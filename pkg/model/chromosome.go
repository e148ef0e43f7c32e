package model

// Chromosome is a bag of genes with no positional meaning, plus cached
// evaluation results. The cache is populated by the fitness evaluator and
// is considered stale after any mutation of Genes.
type Chromosome struct {
	Genes          []Gene
	Fitness        float64
	HardViolations int
	SoftViolations int
	Breakdown      map[string]int
}

// Clone performs a deep copy: offspring produced during crossover and
// mutation are fresh objects, never sharing gene-slice backing arrays with
// a parent.
func (c Chromosome) Clone() Chromosome {
	genes := make([]Gene, len(c.Genes))
	copy(genes, c.Genes)

	breakdown := make(map[string]int, len(c.Breakdown))
	for k, v := range c.Breakdown {
		breakdown[k] = v
	}

	return Chromosome{
		Genes:          genes,
		Fitness:        c.Fitness,
		HardViolations: c.HardViolations,
		SoftViolations: c.SoftViolations,
		Breakdown:      breakdown,
	}
}
