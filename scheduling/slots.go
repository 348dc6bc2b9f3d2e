package scheduling

// GenerateSlots emits candidate start times (minutes since midnight) at fixed
// granularity steps from the window's open time, keeping every candidate whose
// full duration fits before close. Generation is a pure function of the
// window; buffers and existing bookings are applied at conflict-check time.
func GenerateSlots(window DayWindow, duration, granularity int) []int {
	if !window.IsOpen || duration <= 0 || granularity <= 0 {
		return nil
	}

	var slots []int
	for start := window.Open; start+duration <= window.Close; start += granularity {
		slots = append(slots, start)
	}
	return slots
}
