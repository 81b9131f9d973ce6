package fieldval

import (
	"strings"
	"testing"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }
func intPtr(i int) *int         { return &i }

func assertMessage(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("expected error %q, got %q", want, err.Error())
	}
}

func TestStringRequired(t *testing.T) {
	if err := String(nil, 1, 10, "Name", true); err == nil {
		t.Fatal("expected error for nil required string")
	}
	assertMessage(t, String(strPtr(""), 1, 10, "Name", true), "Name field cannot be empty")

	if err := String(nil, 1, 10, "Name", false); err != nil {
		t.Fatalf("optional nil string should pass, got %v", err)
	}
	if err := String(strPtr(""), 1, 10, "Name", false); err != nil {
		t.Fatalf("optional empty string should pass, got %v", err)
	}
}

func TestStringLength(t *testing.T) {
	assertMessage(t, String(strPtr("ab"), 3, 10, "Title", true), "Title must contain at least 3 characters")
	assertMessage(t, String(strPtr(strings.Repeat("a", 11)), 3, 10, "Title", true), "Title must not exceed 10 characters")
	if err := String(strPtr("abc"), 3, 10, "Title", true); err != nil {
		t.Fatalf("in-range string should pass, got %v", err)
	}
}

func TestName(t *testing.T) {
	valid := []string{"John", "John Doe", "O'Brien", "Anna-Maria", "J. R. Tolkien"}
	for _, v := range valid {
		if err := Name(strPtr(v), "Name", true); err != nil {
			t.Errorf("Name(%q) should pass, got %v", v, err)
		}
	}

	invalid := []string{"John  Doe", " John", "John ", "John--Doe", "John9", "J@ne", strings.Repeat("a", 31)}
	for _, v := range invalid {
		if err := Name(strPtr(v), "Name", true); err == nil {
			t.Errorf("Name(%q) should fail", v)
		}
	}
}

func TestEmail(t *testing.T) {
	valid := []string{"a@b.co", "john.doe@college.edu", "x+y@sub.domain.org"}
	for _, v := range valid {
		if err := Email(strPtr(v), "Email", true); err != nil {
			t.Errorf("Email(%q) should pass, got %v", v, err)
		}
	}

	invalid := []string{"plain", "a b@c.com", "a@@b.com", "a@b", "@b.com", "a@"}
	for _, v := range invalid {
		if err := Email(strPtr(v), "Email", true); err == nil {
			t.Errorf("Email(%q) should fail", v)
		}
	}

	long := strings.Repeat("a", 95) + "@b.com"
	if err := Email(strPtr(long), "Email", true); err == nil {
		t.Error("over-long email should fail")
	}
}

func TestPhone(t *testing.T) {
	if err := Phone(strPtr("1234567890"), "Phone Number", true); err != nil {
		t.Fatalf("ten digit phone should pass, got %v", err)
	}
	for _, v := range []string{"12345", "12345678901", "123456789a", "+911234567890"} {
		assertMessage(t, Phone(strPtr(v), "Phone Number", true), "Invalid Phone Number")
	}
}

func TestPassword(t *testing.T) {
	if err := Password(strPtr("secret"), "Password", true); err != nil {
		t.Fatalf("six character password should pass, got %v", err)
	}
	assertMessage(t, Password(strPtr("12345"), "Password", true), "Password must contain at least 6 characters")
	assertMessage(t, Password(strPtr(strings.Repeat("x", 51)), "Password", true), "Password must not exceed 50 characters")
	assertMessage(t, Password(nil, "Password", true), "Password field cannot be empty")
}

func TestObjectID(t *testing.T) {
	if err := ObjectID(strPtr("507f1f77bcf86cd799439011"), "ID", true); err != nil {
		t.Fatalf("valid object id should pass, got %v", err)
	}
	for _, v := range []string{"507f1f77bcf86cd79943901", "507f1f77bcf86cd7994390111", "507f1f77bcf86cd79943901g"} {
		assertMessage(t, ObjectID(strPtr(v), "ID", true), "Invalid ID")
	}
}

func TestGenderAndBranch(t *testing.T) {
	for _, v := range []string{"male", "female", "other"} {
		if err := Gender(strPtr(v), "Gender", true); err != nil {
			t.Errorf("Gender(%q) should pass, got %v", v, err)
		}
	}
	if err := Gender(strPtr("Male"), "Gender", true); err == nil {
		t.Error("gender values are case sensitive")
	}

	for _, v := range []string{"CSE", "ECE", "EEE"} {
		if err := Branch(strPtr(v), "Branch", true); err != nil {
			t.Errorf("Branch(%q) should pass, got %v", v, err)
		}
	}
	if err := Branch(strPtr("MECH"), "Branch", true); err == nil {
		t.Error("unknown branch should fail")
	}
}

func TestPassOutYear(t *testing.T) {
	if err := PassOutYear(intPtr(2025), "Pass Out Year", true); err != nil {
		t.Fatalf("valid year should pass, got %v", err)
	}
	assertMessage(t, PassOutYear(intPtr(1999), "Pass Out Year", true), "Invalid Pass Out Year")
	assertMessage(t, PassOutYear(intPtr(2101), "Pass Out Year", true), "Invalid Pass Out Year")
	assertMessage(t, PassOutYear(nil, "Pass Out Year", true), "Pass Out Year field cannot be empty")
}

func TestNumberRange(t *testing.T) {
	if err := Number(numPtr(9.2), 0, 10, "CGPA", true); err != nil {
		t.Fatalf("in-range number should pass, got %v", err)
	}
	assertMessage(t, Number(numPtr(10.5), 0, 10, "CGPA", true), "Invalid CGPA")
	assertMessage(t, Number(numPtr(-1), 0, 10, "CGPA", true), "Invalid CGPA")
}

func TestIntRange(t *testing.T) {
	if err := Int(intPtr(0), 0, 100, "Backlogs", true); err != nil {
		t.Fatalf("zero should pass, got %v", err)
	}
	assertMessage(t, Int(intPtr(101), 0, 100, "Backlogs", true), "Invalid Backlogs")
}

func TestDate(t *testing.T) {
	for _, v := range []string{"2024-05-01", "2024-05-01T10:30:00Z"} {
		if err := Date(strPtr(v), "Drive Date", true); err != nil {
			t.Errorf("Date(%q) should pass, got %v", v, err)
		}
	}
	assertMessage(t, Date(strPtr("01/05/2024"), "Drive Date", true), "Drive Date must be a valid date")
	assertMessage(t, Date(strPtr("not a date"), "Drive Date", true), "Drive Date must be a valid date")
}

func TestDateOfBirth(t *testing.T) {
	if err := DateOfBirth(strPtr("2000-01-01"), 17, "Date of Birth", true); err != nil {
		t.Fatalf("adult date of birth should pass, got %v", err)
	}
	if err := DateOfBirth(strPtr("2023-01-01"), 17, "Date of Birth", true); err == nil {
		t.Fatal("under-age date of birth should fail")
	}
}

func TestURL(t *testing.T) {
	valid := []string{
		"https://github.com/user",
		"http://example.com",
		"example.com",
		"sub.domain.example.com:8080/path",
		"8.8.8.8",
	}
	for _, v := range valid {
		if err := URL(strPtr(v), "URL", true); err != nil {
			t.Errorf("URL(%q) should pass, got %v", v, err)
		}
	}

	invalid := []string{
		"127.0.0.1",
		"10.0.0.5",
		"192.168.1.1:8080",
		"0.0.0.0",
		"169.254.1.1",
		"not a url",
		"http://",
	}
	for _, v := range invalid {
		if err := URL(strPtr(v), "URL", true); err == nil {
			t.Errorf("URL(%q) should fail", v)
		}
	}

	long := "https://example.com/" + strings.Repeat("a", 500)
	assertMessage(t, URL(strPtr(long), "URL", true), "URL must not exceed 500 characters")
}
