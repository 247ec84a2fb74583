package entities

import (
	"errors"
	"slices"
	"testing"
)

func TestChatSettings_ToggleCategory(t *testing.T) {
	s := NewChatSettings(1, 10)

	if err := s.ToggleCategory(CategorySign); err != nil {
		t.Fatal(err)
	}
	if s.HasCategory(CategorySign) {
		t.Fatal("sign should be deselected")
	}

	if err := s.ToggleCategory(CategorySign); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(s.Categories, Categories) {
		t.Errorf("categories %v, want canonical order %v", s.Categories, Categories)
	}

	s.Categories = []Category{CategoryAspect}
	if err := s.ToggleCategory(CategoryAspect); !errors.Is(err, ErrLastCategory) {
		t.Errorf("expected ErrLastCategory, got %v", err)
	}
}

func TestNewChatSettings_CopiesCategories(t *testing.T) {
	s := NewChatSettings(1, 10)
	s.Categories[0] = CategoryAspect

	if Categories[0] != CategoryPlanet {
		t.Fatal("settings share the package-level category slice")
	}
}

func TestIsValidQuestionCount(t *testing.T) {
	for _, n := range []int{5, 10, 15, 20} {
		if !IsValidQuestionCount(n) {
			t.Errorf("%d should be valid", n)
		}
	}
	for _, n := range []int{0, -5, 7, 25} {
		if IsValidQuestionCount(n) {
			t.Errorf("%d should be invalid", n)
		}
	}
}
