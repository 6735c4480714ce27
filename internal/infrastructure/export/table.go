// Package export writes flat tabular views of a study program.
package export

import (
	"strconv"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// Header is the column row shared by all exporters.
var Header = []string{
	"Semester",
	"Module code",
	"Module name",
	"Credits",
	"Status",
	"Score",
	"Exam kind",
	"Exam date",
	"Attempt",
}

// Rows flattens the program into one row per module, semester by semester.
// Examination columns stay empty for modules without a grade record. A module
// listed in several semesters appears once per semester.
func Rows(p *curriculum.Program) [][]string {
	var rows [][]string
	for _, s := range p.Semesters() {
		for _, m := range s.Modules() {
			row := []string{
				s.Label(),
				m.Code(),
				m.Name(),
				strconv.Itoa(m.Credits()),
				m.Status().String(),
				"", "", "", "",
			}
			if e := m.Examination(); e != nil {
				row[5] = strconv.FormatFloat(e.Score(), 'f', 2, 64)
				row[6] = e.Kind().String()
				row[7] = timeutil.FormatDate(e.Date())
				row[8] = strconv.Itoa(e.Attempt())
			}
			rows = append(rows, row)
		}
	}
	return rows
}
