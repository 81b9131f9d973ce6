package services

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// EligibilityFilter builds the query matching the drives a student may
// register for. Each requirement contributes one clause: a drive passes the
// clause when it leaves the requirement unset or when the student satisfies
// it. A student with no recorded value for a mark passes only drives that do
// not require it; missing backlog counts are treated as zero.
func EligibilityFilter(student *models.Student) bson.M {
	clauses := bson.A{
		requirementClause("requirements.gender", bson.M{"requirements.gender": student.Gender}),
		markClause("requirements.tenth_mark", student.TenthMark),
		markClause("requirements.plus_two_mark", student.PlusTwoMark),
	}

	if student.BtechCGPA != nil {
		clauses = append(clauses, requirementClause("requirements.btech_min_cgpa",
			bson.M{"requirements.btech_min_cgpa": bson.M{"$lte": *student.BtechCGPA}}))
	} else {
		clauses = append(clauses, absentClause("requirements.btech_min_cgpa"))
	}

	backlogs := 0
	if student.NumberOfBacklogs != nil {
		backlogs = *student.NumberOfBacklogs
	}
	clauses = append(clauses, requirementClause("requirements.number_of_backlogs",
		bson.M{"requirements.number_of_backlogs": bson.M{"$gte": backlogs}}))

	return bson.M{"$and": clauses}
}

// markClause covers both representations of a board-exam requirement: the
// drive may set a percentage threshold, a CGPA threshold, or both.
func markClause(field string, mark *models.Marks) bson.M {
	percentageField := field + ".percentage"
	cgpaField := field + ".cgpa"

	percentage := absentClause(percentageField)
	if mark != nil && mark.Percentage != nil {
		percentage = requirementClause(percentageField, bson.M{percentageField: bson.M{"$lte": *mark.Percentage}})
	}

	cgpa := absentClause(cgpaField)
	if mark != nil && mark.CGPA != nil {
		cgpa = requirementClause(cgpaField, bson.M{cgpaField: bson.M{"$lte": *mark.CGPA}})
	}

	return bson.M{"$and": bson.A{percentage, cgpa}}
}

func requirementClause(field string, satisfied bson.M) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{field: bson.M{"$exists": false}},
		satisfied,
	}}
}

func absentClause(field string) bson.M {
	return bson.M{field: bson.M{"$exists": false}}
}
