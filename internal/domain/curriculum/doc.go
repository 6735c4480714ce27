// Package curriculum contains the domain model of the study dashboard.
//
// This is the core of the application. The package defines:
//
//   - Entities: Program, Semester, Module, Examination
//   - Enums: Degree, ExamKind, ModuleStatus, Rating
//   - Ports: Store, Exporter
//
// # Structure
//
// A Program is created once and generates its semesters. Modules are created
// on their own and added to a semester, which only references them. An
// Examination is attached to a module, which derives its status from it:
//
//	prog, err := curriculum.NewProgram(curriculum.NewProgramParams{
//	    Name:            "Cybersecurity",
//	    Degree:          curriculum.DegreeBachelor,
//	    TotalSemesters:  6,
//	    TargetAverage:   2.0,
//	    TargetSemesters: 6,
//	})
//
//	mod, err := curriculum.NewModule("DLBCSICS01", "Introduction to Cybersecurity", 5, 1)
//	err = prog.Semesters()[0].AddModule(mod)
//
//	exam, err := curriculum.NewExamination(2.3, date, 1, curriculum.ExamWritten)
//	err = mod.AttachExamination(exam) // status becomes Passed
//
// # Grades
//
// Scores run from 1.0 (best) to 5.0 (worst); 4.0 is the last passing score.
// Averages are credit-weighted over passed modules and rounded to two
// decimals. Progress is earned credits over the degree's target credits.
//
// # Errors
//
// Every constructor and setter validates its input and returns a
// *shared.DomainError; a rejected call leaves the object unchanged. Use
// shared.IsValidation, shared.IsDuplicate and shared.IsNotFound to classify.
//
// Nothing in this package is safe for concurrent use. One session owns the
// object graph.
package curriculum
