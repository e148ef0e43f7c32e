package engine

import "github.com/limaJavier/evotimetable/pkg/model"

// ConflictSeverity labels the urgency of a detected conflict.
type ConflictSeverity string

const (
	SeverityCritical ConflictSeverity = "critical"
)

// Conflict is a typed finding from the fast detect-conflicts pass
// (spec.md §6): scans only the three hard duplicate-key violations.
type Conflict struct {
	Category     string
	Severity     ConflictSeverity
	Entity       string
	Day          string
	SlotNumber   int
	AffectedGenes []model.Gene
}

// DetectConflicts is the fast pass used during schedule persistence: it
// scans only faculty/room/section double-bookings and produces typed
// conflict records, a strict subset of Validate's hard-violation output
// on the same input (spec.md §8's testable property).
func DetectConflicts(snapshot model.Snapshot, chromosome model.Chromosome) []Conflict {
	idx := snapshot.Index()
	conflicts := make([]Conflict, 0)

	conflicts = append(conflicts, conflictsFor(idx, chromosome.Genes, model.CategoryFacultyWorkload, func(g model.Gene) string { return g.FacultyID })...)
	conflicts = append(conflicts, conflictsFor(idx, chromosome.Genes, model.CategoryRoomAllocation, func(g model.Gene) string { return g.RoomID })...)
	conflicts = append(conflicts, conflictsFor(idx, chromosome.Genes, model.CategoryStudentSection, func(g model.Gene) string { return g.CourseCode + "/" + g.SectionName })...)

	return conflicts
}

func conflictsFor(idx model.SnapshotIndex, genes []model.Gene, category string, entityOf func(model.Gene) string) []Conflict {
	type bucketKey struct {
		entity string
		day    string
		slot   int
	}
	buckets := map[bucketKey][]model.Gene{}

	for _, gene := range genes {
		slot, ok := idx.SlotByID[gene.TimeSlotID]
		if !ok {
			continue
		}
		key := bucketKey{entity: entityOf(gene), day: slot.Day, slot: slot.SlotNumber}
		buckets[key] = append(buckets[key], gene)
	}

	conflicts := make([]Conflict, 0)
	for key, bucketGenes := range buckets {
		if len(bucketGenes) < 2 {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Category:      category,
			Severity:      SeverityCritical,
			Entity:        key.entity,
			Day:           key.day,
			SlotNumber:    key.slot,
			AffectedGenes: bucketGenes,
		})
	}
	return conflicts
}
