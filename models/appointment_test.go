package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{AppointmentScheduled, AppointmentConfirmed, true},
		{AppointmentScheduled, AppointmentCancelled, true},
		{AppointmentScheduled, AppointmentNoShow, true},
		{AppointmentScheduled, AppointmentCompleted, false},
		{AppointmentConfirmed, AppointmentCompleted, true},
		{AppointmentConfirmed, AppointmentCancelled, true},
		{AppointmentConfirmed, AppointmentNoShow, true},
		{AppointmentConfirmed, AppointmentScheduled, false},
		{AppointmentCompleted, AppointmentCancelled, false},
		{AppointmentCancelled, AppointmentScheduled, false},
		{AppointmentCancelled, AppointmentConfirmed, false},
		{AppointmentNoShow, AppointmentCompleted, false},
		{AppointmentScheduled, AppointmentScheduled, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestIsAppointmentStatus(t *testing.T) {
	for _, s := range []string{AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
		if !IsAppointmentStatus(s) {
			t.Errorf("expected %s to be a valid status", s)
		}
	}
	for _, s := range []string{"", "scheduled", "PENDING", "DONE"} {
		if IsAppointmentStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
