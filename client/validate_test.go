package client

import "testing"

func TestValidateJobID(t *testing.T) {
	for _, id := range []string{"job-1", "a1b2c3", "68f0c2:abc", "x"} {
		if err := ValidateJobID(id); err != nil {
			t.Fatalf("ValidateJobID(%q) = %v", id, err)
		}
	}
	for _, id := range []string{"", "job 1", "job/1", string(make([]byte, 65))} {
		if err := ValidateJobID(id); err == nil {
			t.Fatalf("ValidateJobID(%q) accepted", id)
		}
	}
}

func TestValidateStatusCoversDefinedStates(t *testing.T) {
	for _, s := range []JobStatus{StatusNew, StatusInProgress, StatusApplied, StatusNeedsReview, StatusFailed} {
		if err := ValidateStatus(s); err != nil {
			t.Fatalf("ValidateStatus(%q) = %v", s, err)
		}
	}
	if err := ValidateStatus("pending"); err == nil {
		t.Fatalf("unknown status accepted")
	}
}

func TestValidateAgent(t *testing.T) {
	if err := ValidateAgent("jett"); err != nil {
		t.Fatalf("ValidateAgent(jett) = %v", err)
	}
	if err := ValidateAgent(""); err == nil {
		t.Fatalf("empty agent accepted")
	}
	if err := ValidateAgent("JETT"); err == nil {
		t.Fatalf("catalog lookup must be exact")
	}
}
