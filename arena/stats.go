package arena

// Stats is a point-in-time snapshot of an arena's memory accounting.
type Stats struct {
	RecordSize  int     // byte size of one record slot
	Slots       int     // fixed slot capacity
	SlotsUsed   int     // slots allocated so far
	Capacity    int64   // backing block size in bytes
	Used        int64   // bytes of the block in use
	Remaining   int64   // bytes of the block still free
	Utilization float64 // Used / Capacity, 0 for an empty or zero-capacity arena
}

// Stats reports the arena's current usage. After Release all byte figures
// are zero.
func (a *Arena[T]) Stats() Stats {
	size := recordSize[T]()
	if a.released {
		return Stats{RecordSize: size}
	}
	s := Stats{
		RecordSize: size,
		Slots:      len(a.slots),
		SlotsUsed:  a.cursor,
		Capacity:   int64(len(a.slots)) * int64(size),
		Used:       int64(a.cursor) * int64(size),
	}
	s.Remaining = s.Capacity - s.Used
	if s.Capacity > 0 {
		s.Utilization = float64(s.Used) / float64(s.Capacity)
	}
	return s
}
