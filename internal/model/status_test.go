package model

import "testing"

func TestLoadStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected bool
	}{
		{LoadStatusPending, false},
		{LoadStatusFetching, true},
		{LoadStatusDecoding, true},
		{LoadStatusCompleted, false},
		{LoadStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("LoadStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLoadStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected bool
	}{
		{LoadStatusPending, false},
		{LoadStatusFetching, false},
		{LoadStatusDecoding, false},
		{LoadStatusCompleted, true},
		{LoadStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("LoadStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLoadStatus_String(t *testing.T) {
	status := LoadStatusFetching
	expected := "Fetching"
	result := status.String()

	if result != expected {
		t.Errorf("LoadStatus.String() = %s, expected %s", result, expected)
	}
}
