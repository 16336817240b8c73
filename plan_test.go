package mscfb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSectors(t *testing.T) {
	tests := []struct {
		name      string
		streamLen int
		dirLen    int
		want      Plan
	}{
		{
			name:      "single alignment unit",
			streamLen: 4096,
			dirLen:    512,
			want:      Plan{BookSectors: 8, MsatSectors: 0, SatSectors: 1, DirSectors: 1},
		},
		{
			name:      "one SAT sector exactly full",
			streamLen: 126 * 512,
			dirLen:    512,
			want:      Plan{BookSectors: 126, MsatSectors: 0, SatSectors: 1, DirSectors: 1},
		},
		{
			name:      "SAT sector covering itself spills",
			streamLen: 127 * 512,
			dirLen:    512,
			want:      Plan{BookSectors: 127, MsatSectors: 0, SatSectors: 2, DirSectors: 1},
		},
		{
			name:      "header MSAT full",
			streamLen: 13840 * 512,
			dirLen:    512,
			want:      Plan{BookSectors: 13840, MsatSectors: 0, SatSectors: 109, DirSectors: 1},
		},
		{
			name:      "first MSAT overflow sector",
			streamLen: 13848 * 512,
			dirLen:    512,
			want:      Plan{BookSectors: 13848, MsatSectors: 1, SatSectors: 110, DirSectors: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanSectors(tt.streamLen, tt.dirLen)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPlanSectorsInvalidLengths(t *testing.T) {
	tests := []struct {
		name      string
		streamLen int
		dirLen    int
	}{
		{name: "empty stream", streamLen: 0, dirLen: 512},
		{name: "unaligned stream", streamLen: 100, dirLen: 512},
		{name: "empty directory", streamLen: 4096, dirLen: 0},
		{name: "unaligned directory", streamLen: 4096, dirLen: 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanSectors(tt.streamLen, tt.dirLen)
			assert.ErrorIs(t, err, ErrorInvalidCFB)
		})
	}
}

func TestPlanSectorsCoversItself(t *testing.T) {
	for book := 8; book < 40000; book += 8 * 37 {
		plan, err := PlanSectors(book*SECTOR_LEN, SECTOR_LEN)
		require.NoError(t, err)

		total := plan.TotalSectors()
		assert.GreaterOrEqual(t, plan.SatEntries(), total, "book=%d", book)
		assert.Less(t, plan.SatEntries()-SAT_ENTRIES_PER_SECTOR, total, "book=%d: one SAT sector too many", book)
		assert.LessOrEqual(t, plan.SatSectors, NUM_MSAT_ENTRIES_IN_HEADER+MSAT_ENTRIES_PER_SECTOR*plan.MsatSectors, "book=%d", book)

		wantMsat := 0
		if over := plan.SatSectors - NUM_MSAT_ENTRIES_IN_HEADER; over > 0 {
			wantMsat = (over + MSAT_ENTRIES_PER_SECTOR - 1) / MSAT_ENTRIES_PER_SECTOR
		}
		assert.Equal(t, wantMsat, plan.MsatSectors, "book=%d", book)
	}
}

func TestPlanSectorsTooManySectors(t *testing.T) {
	tests := []struct {
		name      string
		streamLen int
	}{
		{name: "format sector limit", streamLen: int(MAX_REGULAR_SECTOR) * SECTOR_LEN},
		{name: "sector ids overflow int32", streamLen: (1 << 31) * SECTOR_LEN},
		{name: "tables push total past int32", streamLen: (math.MaxInt32 - 1) * SECTOR_LEN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanSectors(tt.streamLen, SECTOR_LEN)
			assert.ErrorIs(t, err, ErrorTooManySectors)
			assert.Nil(t, plan)
		})
	}
}

func TestCheckSlack(t *testing.T) {
	tests := []struct {
		name    string
		prev    int
		next    int
		wantErr bool
	}{
		{name: "grows", prev: -10, next: 116},
		{name: "grows after msat sector", prev: 0, next: 126},
		{name: "unchanged", prev: 5, next: 5, wantErr: true},
		{name: "shrinks", prev: 5, next: 4, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSlack(tt.prev, tt.next, 1)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrorPlanDiverged)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
