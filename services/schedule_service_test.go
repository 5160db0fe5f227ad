package services

import (
	"testing"

	"github.com/kamausoft/health_connect/models"
)

func TestGenerateTimeSlots_DefaultPolicy(t *testing.T) {
	slots := GenerateTimeSlots(DefaultSlotPolicy())

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots for the 9-17/30min policy, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Errorf("expected last slot 16:30, got %s", slots[len(slots)-1])
	}
	// Zero-padded "HH:MM" strings order lexicographically.
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Errorf("slots are not strictly increasing: %s after %s", slots[i], slots[i-1])
		}
	}
	for _, s := range slots {
		if len(s) != 5 || s[2] != ':' {
			t.Errorf("slot %q is not zero-padded HH:MM", s)
		}
	}
}

func TestGenerateTimeSlots_CustomPolicy(t *testing.T) {
	slots := GenerateTimeSlots(SlotPolicy{OpenHour: 8, CloseHour: 12, SlotMinutes: 20})

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots for the 8-12/20min policy, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("expected first slot 08:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "11:40" {
		t.Errorf("expected last slot 11:40, got %s", slots[len(slots)-1])
	}
}

func TestGenerateTimeSlots_HalfOpenInterval(t *testing.T) {
	slots := GenerateTimeSlots(DefaultSlotPolicy())
	for _, s := range slots {
		if s == "17:00" {
			t.Error("closing hour must not produce a slot")
		}
	}
}

func TestMarkBookedSlots(t *testing.T) {
	times := GenerateTimeSlots(DefaultSlotPolicy())
	slots := MarkBookedSlots(times, []string{"10:00"})

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}

	available := 0
	for _, slot := range slots {
		if slot.Time == "10:00" {
			if slot.Available {
				t.Error("expected 10:00 to be unavailable")
			}
			continue
		}
		if !slot.Available {
			t.Errorf("expected %s to be available", slot.Time)
		} else {
			available++
		}
	}
	if available != 15 {
		t.Errorf("expected 15 open slots, got %d", available)
	}
}

func TestMarkBookedSlots_ExactStringMatch(t *testing.T) {
	// No normalization: a non-padded stored time does not consume the
	// padded slot.
	slots := MarkBookedSlots(GenerateTimeSlots(DefaultSlotPolicy()), []string{"9:00"})
	for _, slot := range slots {
		if slot.Time == "09:00" && !slot.Available {
			t.Error("expected 09:00 to stay available for booked time \"9:00\"")
		}
	}
}

func TestMarkBookedSlots_Idempotent(t *testing.T) {
	times := GenerateTimeSlots(DefaultSlotPolicy())
	booked := []string{"09:30", "14:00"}

	first := MarkBookedSlots(times, booked)
	second := MarkBookedSlots(times, booked)

	if len(first) != len(second) {
		t.Fatalf("slot counts differ between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPolicyForDoctor_DepartmentOverride(t *testing.T) {
	doctor := &models.Doctor{
		Department: models.Department{OpenHour: 8, CloseHour: 14, SlotMinutes: 15},
	}

	policy := PolicyForDoctor(doctor)
	if policy.OpenHour != 8 || policy.CloseHour != 14 || policy.SlotMinutes != 15 {
		t.Errorf("expected department policy 8-14/15min, got %+v", policy)
	}
}

func TestPolicyForDoctor_FallbackToDefault(t *testing.T) {
	// A zero-valued department (not preloaded) falls back to defaults.
	policy := PolicyForDoctor(&models.Doctor{})
	if policy != DefaultSlotPolicy() {
		t.Errorf("expected default policy, got %+v", policy)
	}
}
