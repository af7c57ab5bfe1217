package domain

import "time"

// SlotCatalog is the fixed business-hours grid lecturers pick slots from.
// It is static configuration shared by the availability writer and the
// bookable-slot derivation; it is not user-extensible.
var SlotCatalog = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ValidSlot reports whether label belongs to the fixed catalog.
func ValidSlot(label string) bool {
	for _, s := range SlotCatalog {
		if s == label {
			return true
		}
	}
	return false
}

// ParseWeekday parses date and reports whether it falls on a weekday.
// Availability records can only exist on weekdays.
func ParseWeekday(date string) (time.Time, bool, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false, err
	}
	wd := d.Weekday()
	return d, wd != time.Saturday && wd != time.Sunday, nil
}

// AvailabilityRecord is a lecturer's declared set of bookable slots for one
// calendar date. The key is (LecturerID, Date); an empty Times set is
// equivalent to the record being absent.
type AvailabilityRecord struct {
	LecturerID string    `json:"lecturer_id" bson:"lecturer_id"`
	Date       string    `json:"date" bson:"date"`
	Times      []string  `json:"times" bson:"times"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// BookableSlot is one derived entry of the student-facing slot list.
type BookableSlot struct {
	Time     string `json:"time"`
	Bookable bool   `json:"bookable"`
}

// ComputeBookableSlots derives, for each declared slot, whether a student may
// still book it: a slot is bookable iff no appointment in the given set holds
// that exact time with an active (pending or accepted) status. The caller is
// responsible for filtering appointments to the record's (lecturer, date).
// Output is a total function of the two inputs; no hidden state.
func ComputeBookableSlots(rec AvailabilityRecord, appointments []Appointment) []BookableSlot {
	taken := make(map[string]bool, len(appointments))
	for _, a := range appointments {
		if a.Status.Active() {
			taken[a.Time] = true
		}
	}
	slots := make([]BookableSlot, 0, len(rec.Times))
	for _, t := range rec.Times {
		slots = append(slots, BookableSlot{Time: t, Bookable: !taken[t]})
	}
	return slots
}
