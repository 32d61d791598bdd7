package claimsvc

import (
	"testing"
)

// Các vector chuẩn: deviceValue 10000 → trần 7000; sau claim 2500 còn 4500;
// tổng chi phí 8000 → còn -1000 (âm, không clamp).
func TestComputeCoverage(t *testing.T) {
	cases := []struct {
		deviceValue int64
		totalUsed   int64
		wantLimit   int64
		wantRemain  int64
	}{
		{10000, 0, 7000, 7000},
		{10000, 2500, 7000, 4500},
		{10000, 8000, 7000, -1000},
		{0, 0, 0, 0},
		{33333, 0, 23333, 23333}, // floor(33333*0.7) = floor(23333.1)
		{15999, 11199, 11199, 0},
	}

	for _, tc := range cases {
		got := ComputeCoverage(tc.deviceValue, tc.totalUsed)
		if got.CoverageLimit != tc.wantLimit {
			t.Errorf("deviceValue=%d: coverageLimit=%d, muốn %d", tc.deviceValue, got.CoverageLimit, tc.wantLimit)
		}
		if got.RemainingBalance != tc.wantRemain {
			t.Errorf("deviceValue=%d totalUsed=%d: remainingBalance=%d, muốn %d",
				tc.deviceValue, tc.totalUsed, got.RemainingBalance, tc.wantRemain)
		}
		if got.TotalUsed != tc.totalUsed {
			t.Errorf("totalUsed bị đổi: %d, muốn %d", got.TotalUsed, tc.totalUsed)
		}
	}
}

// Trần bảo hiểm dùng floor, không làm tròn lên.
func TestComputeCoverageFloors(t *testing.T) {
	got := ComputeCoverage(9999, 0) // 9999*0.7 = 6999.3
	if got.CoverageLimit != 6999 {
		t.Errorf("coverageLimit=%d, muốn 6999", got.CoverageLimit)
	}
}
