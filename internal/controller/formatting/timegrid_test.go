package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTimeGrid(t *testing.T) {
	slots := DefaultTimeGrid(10)

	assert.Equal(t, "16:00", slots[0])
	assert.Equal(t, "17:50", slots[len(slots)-1])
	assert.Len(t, slots, 12)
}

func TestTimeGridInterval(t *testing.T) {
	slots := DefaultTimeGrid(30)
	assert.Equal(t, []string{"16:00", "16:30", "17:00", "17:30"}, slots)
}

func TestTimeGridZeroIntervalFallsBack(t *testing.T) {
	slots := DefaultTimeGrid(0)
	assert.Len(t, slots, 12)
}

func TestTimeGridPadsMinutes(t *testing.T) {
	slots := TimeGrid(9*60, 9*60+15, 5)
	assert.Equal(t, []string{"9:00", "9:05", "9:10", "9:15"}, slots)
}
