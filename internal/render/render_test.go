package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	pb "github.com/stagecrew/showboard/internal/pb/v1"
)

func testSnapshot() *pb.ScheduleSnapshot {
	return &pb.ScheduleSnapshot{
		StageName:   "Main Stage",
		SlipSeconds: 600,
		Acts: []*pb.Act{
			{
				Name:           "Sunrise Collective",
				ScheduledStart: "11:30:00",
				ScheduledEnd:   "12:00:00",
				ActualStart:    "11:30:00",
				ActualEnd:      "12:10:00",
				Status:         "complete",
			},
			{
				Name:           "Desert Echoes",
				ScheduledStart: "12:00:00",
				ScheduledEnd:   "13:45:00",
				Status:         "pending",
				Notes:          "pyro cue at the drop",
			},
		},
		Projections: []*pb.ActProjection{
			{
				ActName:        "Desert Echoes",
				ProjectedStart: "12:10:00",
				ProjectedEnd:   "13:55:00",
				Status:         "pending",
			},
		},
		HasBreak:              true,
		BreakRemainingSeconds: 300,
	}
}

func TestSnapshot_RendersStatusAndActs(t *testing.T) {
	t.Parallel()

	output := Snapshot(testSnapshot())

	require.Contains(t, output, "Stage: Main Stage")
	require.Contains(t, output, "running +10m behind")
	require.Contains(t, output, "Break: 5m left")
	require.Contains(t, output, "Sunrise Collective")
	require.Contains(t, output, "11:30:00 - 12:10:00")
	require.Contains(t, output, "+10m")
	require.Contains(t, output, "12:10:00 - 13:55:00")
	require.Contains(t, output, "pyro cue at the drop")

	require.Empty(t, Snapshot(nil))
}

func TestSnapshot_NegativeBreak(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.BreakRemainingSeconds = -120

	require.Contains(t, Snapshot(snapshot), "Break: 2m over")
}

func TestBrightness(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Brightness: 5500 nits", Brightness(5500))
}

func TestTimeRange(t *testing.T) {
	t.Parallel()

	require.Empty(t, timeRange("", ""))
	require.Equal(t, "12:00:00 - ?", timeRange("12:00:00", ""))
	require.Equal(t, "? - 13:00:00", timeRange("", "13:00:00"))
	require.Equal(t, "12:00:00 - 13:00:00", timeRange("12:00:00", "13:00:00"))
}
