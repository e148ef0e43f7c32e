package engine

import (
	"math"
	"slices"
	"strconv"

	"github.com/limaJavier/evotimetable/pkg/model"
	"github.com/samber/lo"
)

// Evaluate scores a chromosome per spec.md §4.3: baseline 1000, minus a
// weighted penalty per violation, floored at 0. It returns a new
// Chromosome value (a Clone of the input, genes included) carrying the
// populated Fitness/HardViolations/SoftViolations/Breakdown fields; the
// input chromosome is left unchanged.
func Evaluate(snapshot model.Snapshot, chromosome model.Chromosome, weights map[string]float64) model.Chromosome {
	idx := snapshot.Index()
	breakdown := map[string]int{}

	breakdown[ViolationFacultyDoubleBooking] = doubleBookings(chromosome.Genes, func(g model.Gene) string {
		return g.FacultyID + "|" + slotKey(idx, g.TimeSlotID)
	})
	breakdown[ViolationRoomDoubleBooking] = doubleBookings(chromosome.Genes, func(g model.Gene) string {
		return g.RoomID + "|" + slotKey(idx, g.TimeSlotID)
	})
	breakdown[ViolationSectionDoubleBooking] = doubleBookings(chromosome.Genes, func(g model.Gene) string {
		return g.CourseCode + "/" + g.SectionName + "|" + slotKey(idx, g.TimeSlotID)
	})

	breakdown[ViolationFacultyUnavailable] = facultyUnavailableCount(idx, chromosome.Genes)
	breakdown[ViolationLabContinuityBroken] = labContinuityBrokenCount(idx, chromosome.Genes)
	breakdown[ViolationRoomCapacityExceeded] = roomCapacityExceededCount(idx, chromosome.Genes)

	overMax, underMin := workloadBoundViolations(idx, chromosome.Genes)
	breakdown[ViolationWorkloadOverMax] = overMax
	breakdown[ViolationWorkloadUnderMin] = underMin

	breakdown[ViolationStudentGap] = gapCount(chromosome.Genes, func(g model.Gene) string {
		return g.CourseCode + "/" + g.SectionName
	}, idx)
	breakdown[ViolationFacultyGap] = gapCount(chromosome.Genes, func(g model.Gene) string {
		return g.FacultyID
	}, idx)

	breakdown[ViolationWorkloadImbalance] = int(math.Floor(workloadStdDev(idx, chromosome.Genes)))
	breakdown[ViolationExcessiveConsecutive] = excessiveConsecutiveCount(idx, chromosome.Genes)
	breakdown[ViolationPreferenceMismatch] = preferenceMismatchCount(idx, chromosome.Genes)
	breakdown[ViolationUnbalancedDaily] = unbalancedDailyCount(idx, chromosome.Genes)
	breakdown[ViolationUnknownReference] = unknownReferenceCount(idx, chromosome.Genes)
	breakdown[ViolationMissingSession] = missingSessionCount(snapshot, chromosome.Genes)

	hard := hardCategories()
	hardCount, softCount := 0, 0
	penalty := 0.0
	for category, count := range breakdown {
		weight := weights[category]
		penalty += float64(count) * weight
		if hard[category] {
			hardCount += count
		} else {
			softCount += count
		}
	}

	fitness := 1000.0 - penalty
	if fitness < 0 {
		fitness = 0
	}

	result := chromosome.Clone()
	result.Fitness = fitness
	result.HardViolations = hardCount
	result.SoftViolations = softCount
	result.Breakdown = breakdown
	return result
}

// missingSessionCount compares the genes actually present against every
// (course, section, session-type, session-index) key Random Construction
// was supposed to fill (spec.md §4.2): computing this inside Evaluate
// rather than bookkeeping it through construction/crossover/mutation keeps
// the fitness calculation self-contained and correct no matter when in a
// chromosome's lifetime it runs.
func missingSessionCount(snapshot model.Snapshot, genes []model.Gene) int {
	present := make(map[string]bool, len(genes))
	for _, gene := range genes {
		present[sessionKey(gene.CourseCode, gene.SectionName, gene.SessionType, gene.SessionIndex)] = true
	}

	missing := 0
	for _, course := range snapshot.Courses {
		for _, section := range course.Sections {
			for _, requirement := range model.DeriveSessionRequirements(course, section) {
				key := sessionKey(requirement.CourseCode, requirement.Section, requirement.SessionType, requirement.Index)
				if !present[key] {
					missing++
				}
			}
		}
	}
	return missing
}

func sessionKey(course, section string, sessionType model.SessionType, index int) string {
	return course + "|" + section + "|" + string(sessionType) + "|" + strconv.Itoa(index)
}

func slotKey(idx model.SnapshotIndex, slotID string) string {
	slot, ok := idx.SlotByID[slotID]
	if !ok {
		return "?" + slotID
	}
	return slot.Day + "#" + strconv.Itoa(slot.SlotNumber)
}

// doubleBookings counts duplicates beyond the first occurrence of each key.
func doubleBookings(genes []model.Gene, key func(model.Gene) string) int {
	counts := lo.CountValues(lo.Map(genes, func(g model.Gene, _ int) string { return key(g) }))
	total := 0
	for _, count := range counts {
		if count > 1 {
			total += count - 1
		}
	}
	return total
}

func facultyUnavailableCount(idx model.SnapshotIndex, genes []model.Gene) int {
	count := 0
	for _, gene := range genes {
		faculty, ok := idx.FacultyByID[gene.FacultyID]
		if !ok {
			continue // counted as unknown_reference instead
		}
		slot, ok := idx.SlotByID[gene.TimeSlotID]
		if !ok {
			continue
		}
		if !faculty.AvailableAt(slot.Day, slot.Start, slot.End) {
			count++
		}
	}
	return count
}

// labContinuityBrokenCount implements the full contract from spec.md §4.3,
// replacing the stub noted in spec.md §9 that always reports zero: for
// every lab gene requiring k>1 consecutive slots, each of the k-1 expected
// neighbor genes (same course/section/faculty/room/day, slot+1..slot+k-1)
// that is absent counts as one violation.
func labContinuityBrokenCount(idx model.SnapshotIndex, genes []model.Gene) int {
	present := make(map[string]bool, len(genes))
	for _, gene := range genes {
		slot, ok := idx.SlotByID[gene.TimeSlotID]
		if !ok {
			continue
		}
		present[continuityKey(gene.CourseCode, gene.SectionName, gene.FacultyID, gene.RoomID, slot.Day, slot.SlotNumber)] = true
	}

	violations := 0
	for _, gene := range genes {
		if gene.SessionType != model.SessionLab || gene.ConsecutiveSlots <= 1 {
			continue
		}
		slot, ok := idx.SlotByID[gene.TimeSlotID]
		if !ok {
			continue
		}
		for offset := 1; offset < gene.ConsecutiveSlots; offset++ {
			key := continuityKey(gene.CourseCode, gene.SectionName, gene.FacultyID, gene.RoomID, slot.Day, slot.SlotNumber+offset)
			if !present[key] {
				violations++
			}
		}
	}
	return violations
}

func continuityKey(course, section, faculty, room, day string, slotNumber int) string {
	return course + "|" + section + "|" + faculty + "|" + room + "|" + day + "|" + strconv.Itoa(slotNumber)
}

func roomCapacityExceededCount(idx model.SnapshotIndex, genes []model.Gene) int {
	count := 0
	for _, gene := range genes {
		room, ok := idx.RoomByID[gene.RoomID]
		if !ok {
			continue
		}
		section, ok := idx.SectionOf(gene.CourseCode, gene.SectionName)
		if !ok {
			continue
		}
		if room.Capacity < section.Strength {
			count++
		}
	}
	return count
}

func facultyHours(genes []model.Gene) map[string]int {
	hours := map[string]int{}
	for _, gene := range genes {
		hours[gene.FacultyID] += gene.DurationHours
	}
	return hours
}

func workloadBoundViolations(idx model.SnapshotIndex, genes []model.Gene) (overMax, underMin int) {
	hours := facultyHours(genes)
	for facultyID, faculty := range idx.FacultyByID {
		assigned := hours[facultyID]
		if faculty.MaxHours > 0 && assigned > faculty.MaxHours {
			overMax++
		}
		if faculty.MinHours > 0 && assigned < faculty.MinHours {
			underMin++
		}
	}
	return overMax, underMin
}

// gapCount groups genes by key, and for each (group, day) bucket sums
// slot[i]-slot[i-1]-1 over consecutive sorted slot-numbers.
func gapCount(genes []model.Gene, key func(model.Gene) string, idx model.SnapshotIndex) int {
	type bucketKey struct {
		group string
		day   string
	}
	buckets := map[bucketKey][]int{}
	for _, gene := range genes {
		slot, ok := idx.SlotByID[gene.TimeSlotID]
		if !ok {
			continue
		}
		bk := bucketKey{group: key(gene), day: slot.Day}
		buckets[bk] = append(buckets[bk], slot.SlotNumber)
	}

	total := 0
	for _, slots := range buckets {
		total += sumGaps(slots)
	}
	return total
}

func sumGaps(slotNumbers []int) int {
	sorted := append([]int(nil), slotNumbers...)
	slices.Sort(sorted)
	total := 0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i] - sorted[i-1] - 1
		if gap > 0 {
			total += gap
		}
	}
	return total
}

func workloadStdDev(idx model.SnapshotIndex, genes []model.Gene) float64 {
	hours := facultyHours(genes)
	if len(idx.FacultyByID) == 0 {
		return 0
	}
	values := make([]float64, 0, len(idx.FacultyByID))
	for facultyID := range idx.FacultyByID {
		values = append(values, float64(hours[facultyID]))
	}
	return stdDev(values)
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}

// excessiveConsecutiveCount groups by (faculty, day): walking sorted
// slot-numbers, any run of consecutive slot-numbers beyond the third slot
// counts as one violation per extra slot.
func excessiveConsecutiveCount(idx model.SnapshotIndex, genes []model.Gene) int {
	type bucketKey struct {
		faculty string
		day     string
	}
	buckets := map[bucketKey][]int{}
	for _, gene := range genes {
		slot, ok := idx.SlotByID[gene.TimeSlotID]
		if !ok {
			continue
		}
		bk := bucketKey{faculty: gene.FacultyID, day: slot.Day}
		buckets[bk] = append(buckets[bk], slot.SlotNumber)
	}

	total := 0
	for _, slots := range buckets {
		sorted := append([]int(nil), slots...)
		slices.Sort(sorted)
		runLength := 1
		for i := 1; i < len(sorted); i++ {
			if sorted[i] == sorted[i-1]+1 {
				runLength++
			} else {
				runLength = 1
			}
			if runLength > 3 {
				total++
			}
		}
	}
	return total
}

func preferenceMismatchCount(idx model.SnapshotIndex, genes []model.Gene) int {
	count := 0
	for _, gene := range genes {
		faculty, ok := idx.FacultyByID[gene.FacultyID]
		if !ok {
			continue
		}
		if slices.Contains(faculty.AvoidSlots, gene.TimeSlotID) {
			count++
			continue
		}
		if len(faculty.PreferredSlots) > 0 && !slices.Contains(faculty.PreferredSlots, gene.TimeSlotID) {
			count++
		}
	}
	return count
}

// unbalancedDailyCount measures, per faculty, how unevenly their weekly
// hours spread across days: floor(std-dev of per-day hours), summed across
// faculty. This resolves spec.md's "Unbalanced daily distribution" soft
// constraint, whose detection rule the distillation left unspecified (see
// DESIGN.md).
func unbalancedDailyCount(idx model.SnapshotIndex, genes []model.Gene) int {
	perFacultyDay := map[string]map[string]int{}
	for _, gene := range genes {
		slot, ok := idx.SlotByID[gene.TimeSlotID]
		if !ok {
			continue
		}
		if perFacultyDay[gene.FacultyID] == nil {
			perFacultyDay[gene.FacultyID] = map[string]int{}
		}
		perFacultyDay[gene.FacultyID][slot.Day] += gene.DurationHours
	}

	total := 0
	for _, byDay := range perFacultyDay {
		values := make([]float64, 0, len(byDay))
		for _, hours := range byDay {
			values = append(values, float64(hours))
		}
		total += int(math.Floor(stdDev(values)))
	}
	return total
}

func unknownReferenceCount(idx model.SnapshotIndex, genes []model.Gene) int {
	count := 0
	for _, gene := range genes {
		if _, ok := idx.CourseByCode[gene.CourseCode]; !ok {
			count++
			continue
		}
		if _, ok := idx.FacultyByID[gene.FacultyID]; !ok {
			count++
			continue
		}
		if _, ok := idx.RoomByID[gene.RoomID]; !ok {
			count++
			continue
		}
		if _, ok := idx.SlotByID[gene.TimeSlotID]; !ok {
			count++
			continue
		}
	}
	return count
}
