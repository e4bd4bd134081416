// File: services/schedule/view_test.go
package schedule

import "testing"

func TestDefaultChartShape(t *testing.T) {
	if DefaultIntervalHours != 3 {
		t.Errorf("default interval = %dh, the plan page opens with a 3h selector", DefaultIntervalHours)
	}
	if DefaultBufferBuckets != 2 {
		t.Errorf("default lead buckets = %d, want 2", DefaultBufferBuckets)
	}
}
