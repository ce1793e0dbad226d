package quiz

import "testing"

func TestScorePicksMajorityAxis(t *testing.T) {
	// Five votes for axis 2 (creative), scattered remainder.
	answers := []int{2, 2, 2, 2, 2, 0, 1, 4}

	profile, err := Score(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Type != "creative" {
		t.Fatalf("got profile %q, want %q", profile.Type, "creative")
	}
}

func TestScoreTieBreaksTowardLowestAxis(t *testing.T) {
	// Axes 0 and 1 both receive three votes; the lower index wins.
	answers := []int{1, 1, 1, 0, 0, 0, 2, 3}

	profile, err := Score(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Type != "casual" {
		t.Fatalf("got profile %q, want %q", profile.Type, "casual")
	}
}

func TestScoreUnanimous(t *testing.T) {
	answers := make([]int, len(Questions))
	for i := range answers {
		answers[i] = 5
	}

	profile, err := Score(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Type != "trendy" {
		t.Fatalf("got profile %q, want %q", profile.Type, "trendy")
	}
}

func TestScoreRejectsWrongAnswerCount(t *testing.T) {
	if _, err := Score([]int{0, 1, 2}); err == nil {
		t.Fatal("expected error for short answer slice")
	}
	if _, err := Score(nil); err == nil {
		t.Fatal("expected error for nil answers")
	}
}

func TestScoreRejectsOutOfRangeAnswers(t *testing.T) {
	answers := make([]int, len(Questions))
	answers[3] = AxisCount
	if _, err := Score(answers); err == nil {
		t.Fatal("expected error for answer beyond axis count")
	}

	answers[3] = -1
	if _, err := Score(answers); err == nil {
		t.Fatal("expected error for negative answer")
	}
}

func TestQuestionsOfferOneOptionPerAxis(t *testing.T) {
	if len(Questions) == 0 {
		t.Fatal("question set is empty")
	}
	for _, q := range Questions {
		if len(q.Options) != AxisCount {
			t.Fatalf("question %d has %d options, want %d", q.ID, len(q.Options), AxisCount)
		}
	}
}

func TestProfilesCarrySelectionSeeds(t *testing.T) {
	for i, p := range Profiles {
		if p.Type == "" {
			t.Fatalf("profile %d has no type", i)
		}
		if len(p.OutfitTypes) == 0 {
			t.Fatalf("profile %q has no outfit types", p.Type)
		}
		if len(p.Colors) == 0 {
			t.Fatalf("profile %q has no colors", p.Type)
		}
	}
}
