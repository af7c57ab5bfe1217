package domain

import "testing"

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		date    string
		weekday bool
		wantErr bool
	}{
		{"2026-03-02", true, false},  // Monday
		{"2026-03-06", true, false},  // Friday
		{"2026-03-07", false, false}, // Saturday
		{"2026-03-08", false, false}, // Sunday
		{"03/02/2026", false, true},
		{"not-a-date", false, true},
	}

	for _, tc := range cases {
		_, weekday, err := ParseWeekday(tc.date)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: error = %v, wantErr %v", tc.date, err, tc.wantErr)
			continue
		}
		if weekday != tc.weekday {
			t.Errorf("%s: weekday = %v, want %v", tc.date, weekday, tc.weekday)
		}
	}
}

func TestValidSlot(t *testing.T) {
	for _, s := range SlotCatalog {
		if !ValidSlot(s) {
			t.Errorf("catalog slot %q must be valid", s)
		}
	}
	for _, s := range []string{"08:00", "18:00", "09:30", "9:00", ""} {
		if ValidSlot(s) {
			t.Errorf("%q must not be valid", s)
		}
	}
}

func TestComputeBookableSlots_NoAppointments(t *testing.T) {
	rec := AvailabilityRecord{
		LecturerID: "lect_1",
		Date:       "2026-03-02",
		Times:      []string{"09:00", "10:00", "11:00"},
	}

	slots := ComputeBookableSlots(rec, nil)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if !s.Bookable {
			t.Errorf("slot %s must be bookable with no appointments", s.Time)
		}
	}
}

func TestComputeBookableSlots_ActiveAppointmentsBlock(t *testing.T) {
	rec := AvailabilityRecord{Times: []string{"09:00", "10:00", "11:00", "12:00"}}
	appts := []Appointment{
		{Time: "09:00", Status: StatusPending},
		{Time: "10:00", Status: StatusAccepted},
		{Time: "11:00", Status: StatusDeclined},
		{Time: "12:00", Status: StatusCancelled},
	}

	slots := ComputeBookableSlots(rec, appts)
	want := map[string]bool{"09:00": false, "10:00": false, "11:00": true, "12:00": true}
	for _, s := range slots {
		if s.Bookable != want[s.Time] {
			t.Errorf("slot %s: bookable = %v, want %v", s.Time, s.Bookable, want[s.Time])
		}
	}
}

func TestComputeBookableSlots_TakenSlotOutsideDeclaredSet(t *testing.T) {
	// An appointment on a slot the lecturer no longer declares must not
	// surface in the output at all.
	rec := AvailabilityRecord{Times: []string{"14:00"}}
	appts := []Appointment{{Time: "09:00", Status: StatusPending}}

	slots := ComputeBookableSlots(rec, appts)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Time != "14:00" || !slots[0].Bookable {
		t.Errorf("unexpected slot %+v", slots[0])
	}
}

func TestComputeBookableSlots_EmptyRecord(t *testing.T) {
	slots := ComputeBookableSlots(AvailabilityRecord{}, nil)
	if len(slots) != 0 {
		t.Errorf("empty record must yield an empty list, got %d entries", len(slots))
	}
}
