package fieldval

import (
	"fmt"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// StringArray validates every element of a string array against the scalar
// string rules. A nil array is treated as absent; an empty array is rejected
// only when canBeEmpty is false.
func StringArray(values []string, minLen, maxLen int, fieldName string, canBeEmpty bool) error {
	if values == nil {
		if !canBeEmpty {
			return emptyError(fieldName)
		}
		return nil
	}
	if len(values) == 0 && !canBeEmpty {
		return emptyError(fieldName)
	}
	for i := range values {
		if err := String(&values[i], minLen, maxLen, fmt.Sprintf("Each value in %s", fieldName), true); err != nil {
			return err
		}
	}
	return nil
}

// GenderArray validates every element against the gender allow-list.
func GenderArray(values []string, fieldName string, canBeEmpty bool) error {
	return memberArray(values, models.Genders, fieldName, canBeEmpty)
}

// BranchArray validates every element against the branch allow-list.
func BranchArray(values []string, fieldName string, canBeEmpty bool) error {
	return memberArray(values, models.Branches, fieldName, canBeEmpty)
}

func memberArray(values, allowed []string, fieldName string, canBeEmpty bool) error {
	if len(values) == 0 {
		if !canBeEmpty {
			return emptyError(fieldName)
		}
		return nil
	}
	elementName := fmt.Sprintf("Each value in %s", fieldName)
	for i := range values {
		if err := member(&values[i], allowed, elementName, true); err != nil {
			return err
		}
	}
	return nil
}

// Marks validates a board-exam result sub-record: percentage and CGPA are
// both optional numbers in [0, 100].
func Marks(value *models.Marks, fieldName string, required bool) error {
	if value == nil {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if err := Number(value.Percentage, 0, 100, fieldName+" percentage", false); err != nil {
		return err
	}
	return Number(value.CGPA, 0, 100, fieldName+" cgpa", false)
}

// Address validates a postal address sub-record: each line is a required
// string within its length range.
func Address(value *models.Address, fieldName string, required bool) error {
	if value == nil {
		if required {
			return emptyError(fieldName)
		}
		return nil
	}
	if err := String(&value.LineOne, 3, 100, fieldName+" line one", true); err != nil {
		return err
	}
	if err := String(&value.LineTwo, 3, 100, fieldName+" line two", true); err != nil {
		return err
	}
	if err := String(&value.State, 2, 50, fieldName+" state", true); err != nil {
		return err
	}
	return String(&value.Zip, 5, 10, fieldName+" zip", true)
}

// Projects validates a student's project portfolio: each entry needs a name,
// with optional description and URL.
func Projects(values []models.Project, fieldName string) error {
	for i := range values {
		p := &values[i]
		if err := String(&p.ProjectName, 3, 50, fieldName+" name", true); err != nil {
			return err
		}
		if err := String(p.ProjectDescription, 10, 300, fieldName+" description", false); err != nil {
			return err
		}
		if err := String(p.URL, 0, 1000, fieldName+" url", false); err != nil {
			return err
		}
	}
	return nil
}
