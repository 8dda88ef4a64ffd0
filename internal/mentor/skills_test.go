package mentor

import (
	"reflect"
	"testing"
)

func TestExtractSkillsWholeWord(t *testing.T) {
	skills := ExtractSkills("Built services in Python, dabbled in reactive programming.")

	if !reflect.DeepEqual(skills, []string{"Python"}) {
		t.Fatalf("expected only Python, got %v", skills)
	}
}

func TestExtractSkillsSymbolTerms(t *testing.T) {
	skills := ExtractSkills("Five years of C++17 and SQL work.")

	want := []string{"C++", "SQL"}
	if !reflect.DeepEqual(skills, want) {
		t.Fatalf("expected %v, got %v", want, skills)
	}
}

func TestExtractSkillsEmptyText(t *testing.T) {
	skills := ExtractSkills("")

	if skills == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(skills) != 0 {
		t.Fatalf("expected no skills, got %v", skills)
	}
}

func TestSuggestRolesTieBreaksInDeclaredOrder(t *testing.T) {
	// React and HTML score 2 for both Frontend and Full Stack; CSSS must
	// not count as CSS.
	roles := SuggestRoles("React, HTML, CSSS")

	want := []string{"Frontend Developer", "Full Stack Developer"}
	if !reflect.DeepEqual(roles, want) {
		t.Fatalf("expected %v, got %v", want, roles)
	}
}

func TestSuggestRolesDefaultTriple(t *testing.T) {
	roles := SuggestRoles("gardening, cooking, and watercolor painting")

	want := []string{"AI Engineer", "Data Scientist", "Full Stack Developer"}
	if !reflect.DeepEqual(roles, want) {
		t.Fatalf("expected default roles %v, got %v", want, roles)
	}
}

func TestSuggestRolesTopFive(t *testing.T) {
	text := "Python SQL Pandas Machine Learning Docker AWS Git Excel Power BI React Node.js Flask HTML CSS"
	roles := SuggestRoles(text)

	want := []string{
		"Data Scientist",
		"Full Stack Developer",
		"Data Analyst",
		"Frontend Developer",
		"Backend Developer",
	}
	if !reflect.DeepEqual(roles, want) {
		t.Fatalf("expected %v, got %v", want, roles)
	}
}
