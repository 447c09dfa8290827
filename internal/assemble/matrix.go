package assemble

// Matrix buckets NS lesson ids by day and slot, preserving insertion order.
type Matrix struct {
	cells [][][]string
	slots int
}

// NewMatrix returns an empty days×slots matrix.
func NewMatrix(days, slots int) *Matrix {
	cells := make([][][]string, days)
	for d := range cells {
		cells[d] = make([][]string, slots)
	}

	return &Matrix{cells: cells, slots: slots}
}

// Days returns the outer dimension.
func (m *Matrix) Days() int { return len(m.cells) }

// Slots returns the inner dimension.
func (m *Matrix) Slots() int { return m.slots }

// Add appends id to the bucket at day, slot. It reports false when the
// position is outside the matrix.
func (m *Matrix) Add(day, slot int, id string) bool {
	if day < 0 || day >= len(m.cells) || slot < 0 || slot >= m.slots {
		return false
	}

	m.cells[day][slot] = append(m.cells[day][slot], id)

	return true
}

// At returns the bucket at day, slot.
func (m *Matrix) At(day, slot int) []string {
	if day < 0 || day >= len(m.cells) || slot < 0 || slot >= m.slots {
		return nil
	}

	return m.cells[day][slot]
}

// Len returns the number of ids over all buckets.
func (m *Matrix) Len() int {
	n := 0
	for _, day := range m.cells {
		for _, bucket := range day {
			n += len(bucket)
		}
	}

	return n
}
