package engine

import (
	"strconv"
	"strings"

	"github.com/limaJavier/evotimetable/pkg/model"
)

// Violation is one structured finding produced by the Constraint Validator,
// preserving the constraint's name/category/description plus per-violation
// detail records for UI display (spec.md §4.4).
type Violation struct {
	Constraint  string
	Category    string
	Description string
	Count       int
	Details     []string
}

// Report is the validator's output: hard and soft buckets plus a summary,
// spec.md §6's validate() return shape.
type Report struct {
	Hard    []Violation
	Soft    []Violation
	Summary Summary
}

// Summary aggregates the report's totals.
type Summary struct {
	TotalHard  int
	TotalSoft  int
	ByCategory map[string]int
}

// Validate runs the post-hoc audit described in spec.md §4.4: for each
// active constraint in the catalog, dispatch on its category to a
// category-specific checker and bucket the result by kind. This is the
// authoritative audit; Evaluate (the Fitness Evaluator) is the faster
// approximation used inside the search loop.
func Validate(snapshot model.Snapshot, chromosome model.Chromosome, catalog []model.Constraint) Report {
	idx := snapshot.Index()
	report := Report{Summary: Summary{ByCategory: map[string]int{}}}

	for _, constraint := range catalog {
		if !constraint.Active {
			continue
		}

		violated, count, details := checkConstraint(idx, chromosome.Genes, constraint)
		if !violated {
			continue
		}

		violation := Violation{
			Constraint:  constraint.Name,
			Category:    constraint.Category,
			Description: describeConstraint(constraint),
			Count:       count,
			Details:     details,
		}

		if constraint.Kind == model.KindHard {
			report.Hard = append(report.Hard, violation)
			report.Summary.TotalHard += count
		} else {
			report.Soft = append(report.Soft, violation)
			report.Summary.TotalSoft += count
		}
		report.Summary.ByCategory[constraint.Category] += count
	}

	return report
}

func describeConstraint(c model.Constraint) string {
	return c.Name + " (" + string(c.Kind) + ", " + c.Category + ")"
}

func checkConstraint(idx model.SnapshotIndex, genes []model.Gene, constraint model.Constraint) (bool, int, []string) {
	name := strings.ToLower(constraint.Name)

	switch constraint.Category {
	case model.CategoryFacultyWorkload:
		return checkFacultyWorkload(idx, genes, name)
	case model.CategoryRoomAllocation:
		return checkRoomAllocation(idx, genes, name)
	case model.CategoryStudentSection:
		return checkStudentSection(idx, genes, name)
	case model.CategoryLabContinuity:
		return checkLabContinuity(idx, genes)
	case model.CategoryElectiveGrouping:
		return checkElectiveGrouping(idx, genes)
	case model.CategoryTimeSlot, model.CategoryInstitutionalPolicy:
		return false, 0, nil // reserved extension points, spec.md §4.4
	case model.CategoryPreference:
		return checkPreference(idx, genes)
	default:
		return false, 0, nil
	}
}

func checkFacultyWorkload(idx model.SnapshotIndex, genes []model.Gene, name string) (bool, int, []string) {
	if strings.Contains(name, "double booking") || strings.Contains(name, "double-booking") {
		count, details := keyedDuplicates(genes, func(g model.Gene) (string, string) {
			return g.FacultyID + "|" + slotKey(idx, g.TimeSlotID), "faculty " + g.FacultyID + " double-booked at " + slotKey(idx, g.TimeSlotID)
		})
		return count > 0, count, details
	}

	hours := facultyHours(genes)
	details := make([]string, 0)
	count := 0

	for facultyID, faculty := range idx.FacultyByID {
		assigned := hours[facultyID]
		if strings.Contains(name, "max") && faculty.MaxHours > 0 && assigned > faculty.MaxHours {
			count++
			details = append(details, facultyID+" exceeds max hours")
		}
		if strings.Contains(name, "min") && faculty.MinHours > 0 && assigned < faculty.MinHours {
			count++
			details = append(details, facultyID+" under min hours")
		}
	}
	return count > 0, count, details
}

func checkRoomAllocation(idx model.SnapshotIndex, genes []model.Gene, name string) (bool, int, []string) {
	if strings.Contains(name, "double booking") || strings.Contains(name, "double-booking") {
		count, details := keyedDuplicates(genes, func(g model.Gene) (string, string) {
			return g.RoomID + "|" + slotKey(idx, g.TimeSlotID), "room " + g.RoomID + " double-booked at " + slotKey(idx, g.TimeSlotID)
		})
		return count > 0, count, details
	}
	if strings.Contains(name, "capacity") {
		count := 0
		details := make([]string, 0)
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
				details = append(details, room.ID+" capacity "+strconv.Itoa(room.Capacity)+" below "+gene.CourseCode+"/"+gene.SectionName+" strength "+strconv.Itoa(section.Strength))
			}
		}
		return count > 0, count, details
	}
	return false, 0, nil
}

func checkStudentSection(idx model.SnapshotIndex, genes []model.Gene, name string) (bool, int, []string) {
	if strings.Contains(name, "conflict") {
		count, details := keyedDuplicates(genes, func(g model.Gene) (string, string) {
			return g.CourseCode + "/" + g.SectionName + "|" + slotKey(idx, g.TimeSlotID), g.CourseCode + "/" + g.SectionName + " double-booked at " + slotKey(idx, g.TimeSlotID)
		})
		return count > 0, count, details
	}
	if strings.Contains(name, "gap") {
		total := gapCount(genes, func(g model.Gene) string { return g.CourseCode + "/" + g.SectionName }, idx)
		return total > 2, total, nil
	}
	return false, 0, nil
}

func checkLabContinuity(idx model.SnapshotIndex, genes []model.Gene) (bool, int, []string) {
	count := labContinuityBrokenCount(idx, genes)
	return count > 0, count, nil
}

func checkElectiveGrouping(idx model.SnapshotIndex, genes []model.Gene) (bool, int, []string) {
	type bucketKey struct {
		group string
		slot  string
	}
	buckets := map[bucketKey][]string{}

	for _, gene := range genes {
		course, ok := idx.CourseByCode[gene.CourseCode]
		if !ok || !course.IsElective() {
			continue
		}
		key := bucketKey{group: course.ElectiveGroup, slot: slotKey(idx, gene.TimeSlotID)}
		buckets[key] = append(buckets[key], gene.CourseCode)
	}

	count := 0
	details := make([]string, 0)
	for key, codes := range buckets {
		unique := uniqueStrings(codes)
		if len(unique) >= 2 {
			count++
			details = append(details, "elective group "+key.group+" overlaps at "+key.slot+": "+strings.Join(unique, ", "))
		}
	}
	return count > 0, count, details
}

func checkPreference(idx model.SnapshotIndex, genes []model.Gene) (bool, int, []string) {
	count := preferenceMismatchCount(idx, genes)
	return count > 0, count, nil
}

func keyedDuplicates(genes []model.Gene, describe func(model.Gene) (key, detail string)) (int, []string) {
	seen := map[string]int{}
	detailByKey := map[string]string{}
	for _, gene := range genes {
		key, detail := describe(gene)
		seen[key]++
		detailByKey[key] = detail
	}

	count := 0
	details := make([]string, 0)
	for key, n := range seen {
		if n > 1 {
			count += n - 1
			details = append(details, detailByKey[key])
		}
	}
	return count, details
}

func uniqueStrings(values []string) []string {
	seen := map[string]bool{}
	result := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
