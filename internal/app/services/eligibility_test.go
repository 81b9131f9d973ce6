package services

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

func filterClauses(t *testing.T, student *models.Student) bson.A {
	t.Helper()
	filter := EligibilityFilter(student)
	clauses, ok := filter["$and"].(bson.A)
	if !ok || len(clauses) != 5 {
		t.Fatalf("expected five requirement clauses, got %v", filter)
	}
	return clauses
}

func TestEligibilityFilterGenderClause(t *testing.T) {
	student := &models.Student{Gender: "female"}
	clauses := filterClauses(t, student)

	want := bson.M{"$or": bson.A{
		bson.M{"requirements.gender": bson.M{"$exists": false}},
		bson.M{"requirements.gender": "female"},
	}}
	if !reflect.DeepEqual(clauses[0], want) {
		t.Errorf("unexpected gender clause\nwant %v\ngot  %v", want, clauses[0])
	}
}

func TestEligibilityFilterMissingMarksExcludeThresholdDrives(t *testing.T) {
	student := &models.Student{Gender: "male"}
	clauses := filterClauses(t, student)

	want := bson.M{"$and": bson.A{
		bson.M{"requirements.tenth_mark.percentage": bson.M{"$exists": false}},
		bson.M{"requirements.tenth_mark.cgpa": bson.M{"$exists": false}},
	}}
	if !reflect.DeepEqual(clauses[1], want) {
		t.Errorf("a student without marks may only see drives without a mark requirement\nwant %v\ngot  %v", want, clauses[1])
	}
}

func TestEligibilityFilterMarkThreshold(t *testing.T) {
	student := &models.Student{
		Gender:    "male",
		TenthMark: &models.Marks{Percentage: numPtr(85)},
	}
	clauses := filterClauses(t, student)

	want := bson.M{"$and": bson.A{
		bson.M{"$or": bson.A{
			bson.M{"requirements.tenth_mark.percentage": bson.M{"$exists": false}},
			bson.M{"requirements.tenth_mark.percentage": bson.M{"$lte": 85.0}},
		}},
		bson.M{"requirements.tenth_mark.cgpa": bson.M{"$exists": false}},
	}}
	if !reflect.DeepEqual(clauses[1], want) {
		t.Errorf("unexpected tenth mark clause\nwant %v\ngot  %v", want, clauses[1])
	}
}

func TestEligibilityFilterCGPA(t *testing.T) {
	student := &models.Student{Gender: "male", BtechCGPA: numPtr(8.2)}
	clauses := filterClauses(t, student)

	want := bson.M{"$or": bson.A{
		bson.M{"requirements.btech_min_cgpa": bson.M{"$exists": false}},
		bson.M{"requirements.btech_min_cgpa": bson.M{"$lte": 8.2}},
	}}
	if !reflect.DeepEqual(clauses[3], want) {
		t.Errorf("unexpected cgpa clause\nwant %v\ngot  %v", want, clauses[3])
	}
}

func TestEligibilityFilterMissingCGPA(t *testing.T) {
	student := &models.Student{Gender: "male"}
	clauses := filterClauses(t, student)

	want := bson.M{"requirements.btech_min_cgpa": bson.M{"$exists": false}}
	if !reflect.DeepEqual(clauses[3], want) {
		t.Errorf("a student without a cgpa may only see drives without a cgpa floor\nwant %v\ngot  %v", want, clauses[3])
	}
}

func TestEligibilityFilterBacklogs(t *testing.T) {
	student := &models.Student{Gender: "male", NumberOfBacklogs: intPtr(2)}
	clauses := filterClauses(t, student)

	want := bson.M{"$or": bson.A{
		bson.M{"requirements.number_of_backlogs": bson.M{"$exists": false}},
		bson.M{"requirements.number_of_backlogs": bson.M{"$gte": 2}},
	}}
	if !reflect.DeepEqual(clauses[4], want) {
		t.Errorf("unexpected backlog clause\nwant %v\ngot  %v", want, clauses[4])
	}
}

func TestEligibilityFilterMissingBacklogsCountAsZero(t *testing.T) {
	student := &models.Student{Gender: "male"}
	clauses := filterClauses(t, student)

	want := bson.M{"$or": bson.A{
		bson.M{"requirements.number_of_backlogs": bson.M{"$exists": false}},
		bson.M{"requirements.number_of_backlogs": bson.M{"$gte": 0}},
	}}
	if !reflect.DeepEqual(clauses[4], want) {
		t.Errorf("unexpected backlog clause\nwant %v\ngot  %v", want, clauses[4])
	}
}
