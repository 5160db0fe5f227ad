package services

import (
	"fmt"

	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
)

// SlotPolicy describes a department's clinic hours. Slots cover the
// half-open interval [OpenHour, CloseHour) at SlotMinutes granularity.
type SlotPolicy struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func DefaultSlotPolicy() SlotPolicy {
	return SlotPolicy{OpenHour: 9, CloseHour: 17, SlotMinutes: 30}
}

// PolicyForDoctor resolves the clinic-hours policy from the doctor's
// department, falling back to the defaults for unset values.
func PolicyForDoctor(doctor *models.Doctor) SlotPolicy {
	policy := DefaultSlotPolicy()
	dept := doctor.Department
	if dept.CloseHour > dept.OpenHour && dept.SlotMinutes > 0 {
		policy.OpenHour = dept.OpenHour
		policy.CloseHour = dept.CloseHour
		policy.SlotMinutes = dept.SlotMinutes
	}
	return policy
}

// GenerateTimeSlots produces the ordered, zero-padded "HH:MM" slot
// starts for one clinic day. The default 9-17/30min policy yields 16
// slots, "09:00" through "16:30".
func GenerateTimeSlots(policy SlotPolicy) []string {
	var slots []string
	for minutes := policy.OpenHour * 60; minutes < policy.CloseHour*60; minutes += policy.SlotMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return slots
}

// MarkBookedSlots flags each generated slot as unavailable when a booked
// time matches it exactly. No normalization is applied: stored times are
// validated as zero-padded "HH:MM" on write, so exact string equality is
// the whole comparison.
func MarkBookedSlots(times []string, bookedTimes []string) []TimeSlot {
	booked := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	slots := make([]TimeSlot, 0, len(times))
	for _, t := range times {
		_, taken := booked[t]
		slots = append(slots, TimeSlot{Time: t, Available: !taken})
	}
	return slots
}

// DoctorAvailability combines slot generation with the booked-slot scan
// for one doctor and calendar date ("YYYY-MM-DD").
func DoctorAvailability(doctor *models.Doctor, date string) ([]TimeSlot, error) {
	var bookedTimes []string
	err := database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status <> ?", doctor.ID, date, models.AppointmentCancelled).
		Pluck("appointment_time", &bookedTimes).Error
	if err != nil {
		return nil, err
	}

	return MarkBookedSlots(GenerateTimeSlots(PolicyForDoctor(doctor)), bookedTimes), nil
}
