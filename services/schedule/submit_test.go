// File: services/schedule/submit_test.go
package schedule

import (
	"context"
	"errors"
	"strings"
	"testing"

	"letslink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePlanRepo struct {
	plan *models.Plan
}

func (f *fakePlanRepo) Create(plan *models.Plan) error { return nil }
func (f *fakePlanRepo) GetByID(planID, groupID string) (*models.Plan, error) {
	if f.plan != nil && f.plan.ID == planID && f.plan.GroupID == groupID {
		return f.plan, nil
	}
	return nil, nil
}
func (f *fakePlanRepo) GetByGroupID(groupID string) ([]models.Plan, error) { return nil, nil }
func (f *fakePlanRepo) Delete(planID, groupID string) error               { return nil }

type fakeAvailabilityRepo struct {
	records []models.AvailabilityRecord
}

func (f *fakeAvailabilityRepo) CreateMany(ctx context.Context, records []models.AvailabilityRecord) ([]string, error) {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		f.records = append(f.records, r)
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func (f *fakeAvailabilityRepo) GetByPlanID(ctx context.Context, planID string) ([]models.AvailabilityRecord, error) {
	var out []models.AvailabilityRecord
	for _, r := range f.records {
		if r.PlanID == planID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) GetByPlanAndUser(ctx context.Context, planID, userID string) ([]models.AvailabilityRecord, error) {
	var out []models.AvailabilityRecord
	for _, r := range f.records {
		if r.PlanID == planID && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) GetByID(ctx context.Context, recordID string) (*models.AvailabilityRecord, error) {
	for i := range f.records {
		if f.records[i].ID == recordID {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAvailabilityRepo) Update(ctx context.Context, recordID, userID string, fields bson.M) error {
	for i := range f.records {
		if f.records[i].ID == recordID && f.records[i].UserID == userID {
			if v, ok := fields["day"].(string); ok {
				f.records[i].Day = v
			}
			if v, ok := fields["startTime"].(string); ok {
				f.records[i].StartTime = v
			}
			if v, ok := fields["endTime"].(string); ok {
				f.records[i].EndTime = v
			}
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAvailabilityRepo) DeleteByID(ctx context.Context, recordID, userID string) error {
	for i := range f.records {
		if f.records[i].ID == recordID && f.records[i].UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakePresetRepo struct {
	presets []models.Preset
}

func (f *fakePresetRepo) Create(preset *models.Preset) error { return nil }
func (f *fakePresetRepo) GetByUserID(userID string) ([]models.Preset, error) {
	var out []models.Preset
	for _, p := range f.presets {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePresetRepo) GetByID(presetID string) (*models.Preset, error) {
	for i := range f.presets {
		if f.presets[i].ID == presetID {
			p := f.presets[i]
			return &p, nil
		}
	}
	return nil, nil
}
func (f *fakePresetRepo) Update(presetID, userID string, fields bson.M) error { return nil }
func (f *fakePresetRepo) Delete(presetID, userID string) error                { return nil }

func newTestService(plan *models.Plan, presets ...models.Preset) (*DefaultScheduleService, *fakeAvailabilityRepo) {
	avail := &fakeAvailabilityRepo{}
	svc := &DefaultScheduleService{
		AvailabilityRepo: avail,
		PlanRepo:         &fakePlanRepo{plan: plan},
		PresetRepo:       &fakePresetRepo{presets: presets},
	}
	return svc, avail
}

func testPlan() *models.Plan {
	return &models.Plan{
		ID:        "p1",
		GroupID:   "g1",
		Name:      "Ski trip",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
	}
}

func TestSubmitRejectsOutOfRangeDates(t *testing.T) {
	svc, avail := newTestService(testPlan())

	_, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-09",
		EndDate:   "2026-03-10",
		Mode:      "custom",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "2026-03-10") || !strings.Contains(err.Error(), "2026-03-12") {
		t.Errorf("error should name the plan's valid range: %q", err.Error())
	}
	if len(avail.records) != 0 {
		t.Errorf("rejected submission wrote %d records", len(avail.records))
	}
}

func TestSubmitRejectsInvertedSingleDayTimes(t *testing.T) {
	svc, avail := newTestService(testPlan())

	_, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-10",
		Mode:      "custom",
		StartTime: "18:00",
		EndTime:   "09:00",
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(avail.records) != 0 {
		t.Errorf("rejected submission wrote %d records", len(avail.records))
	}
}

func TestSubmitCustomOvernightSplitsAtMidnight(t *testing.T) {
	svc, avail := newTestService(testPlan())

	records, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Mode:      "custom",
		StartTime: "20:00",
		EndTime:   "06:00",
	})
	if err != nil {
		t.Fatalf("overnight multi-day block should be accepted: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	want := []struct{ day, start, end string }{
		{"2026-03-10", "20:00", "23:59"},
		{"2026-03-11", "00:00", "23:59"},
		{"2026-03-12", "00:00", "06:00"},
	}
	for i, w := range want {
		r := records[i]
		if r.Day != w.day || r.StartTime != w.start || r.EndTime != w.end {
			t.Errorf("record %d = %s %s-%s, want %s %s-%s", i, r.Day, r.StartTime, r.EndTime, w.day, w.start, w.end)
		}
		if r.ID == "" || r.PlanID != "p1" || r.UserID != "u1" {
			t.Errorf("record %d missing identity fields: %+v", i, r)
		}
	}
	if len(avail.records) != 3 {
		t.Errorf("store has %d records, want 3", len(avail.records))
	}
}

func TestSubmitSingleDayCustomDoesNotSplit(t *testing.T) {
	svc, _ := newTestService(testPlan())

	records, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-11",
		EndDate:   "2026-03-11",
		Mode:      "custom",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].StartTime != "09:00" || records[0].EndTime != "17:00" {
		t.Errorf("record window = %s-%s", records[0].StartTime, records[0].EndTime)
	}
}

func TestSubmitPresetModeExpandsPerDayPerPreset(t *testing.T) {
	own := models.Preset{ID: "mine", UserID: "u1", Label: "Lunch", StartTime: "12:30", EndTime: "13:30"}
	svc, avail := newTestService(testPlan(), own)

	records, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-11",
		Mode:      "preset",
		PresetIDs: []string{"builtin-morning", "mine"},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Two days, two presets each.
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[0].StartTime != "08:00" || records[0].EndTime != "12:00" {
		t.Errorf("builtin window = %s-%s", records[0].StartTime, records[0].EndTime)
	}
	if records[1].StartTime != "12:30" || records[1].EndTime != "13:30" {
		t.Errorf("own preset window = %s-%s", records[1].StartTime, records[1].EndTime)
	}
	if records[2].Day != "2026-03-11" {
		t.Errorf("second day = %s", records[2].Day)
	}
	if len(avail.records) != 4 {
		t.Errorf("store has %d records, want 4", len(avail.records))
	}
}

func TestSubmitPresetModeRequiresSelection(t *testing.T) {
	svc, _ := newTestService(testPlan())

	_, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-10",
		Mode:      "preset",
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitRejectsForeignPreset(t *testing.T) {
	other := models.Preset{ID: "theirs", UserID: "u2", Label: "Gym", StartTime: "06:00", EndTime: "07:00"}
	svc, avail := newTestService(testPlan(), other)

	_, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-10",
		Mode:      "preset",
		PresetIDs: []string{"theirs"},
	})
	if !IsValidation(err) {
		t.Fatalf("another user's preset should be rejected, got %v", err)
	}
	if len(avail.records) != 0 {
		t.Errorf("rejected submission wrote %d records", len(avail.records))
	}
}

func TestSubmitRejectsUnknownMode(t *testing.T) {
	svc, _ := newTestService(testPlan())

	_, err := svc.Submit(context.Background(), "g1", "p1", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-10",
		Mode:      "psychic",
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitUnknownPlan(t *testing.T) {
	svc, _ := newTestService(testPlan())

	_, err := svc.Submit(context.Background(), "g1", "nope", "u1", models.SubmitAvailabilityRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-10",
		Mode:      "custom",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRecordOwnerScoped(t *testing.T) {
	svc, avail := newTestService(testPlan())
	avail.records = []models.AvailabilityRecord{
		{ID: "r1", PlanID: "p1", UserID: "u1", Day: "2026-03-10", StartTime: "09:00", EndTime: "10:00"},
	}

	req := models.UpdateAvailabilityRequest{Day: "2026-03-11", StartTime: "10:00", EndTime: "12:00"}

	if err := svc.UpdateRecord(context.Background(), "r1", "u2", req); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another user, got %v", err)
	}
	if err := svc.UpdateRecord(context.Background(), "missing", "u1", req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.UpdateRecord(context.Background(), "r1", "u1", req); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if avail.records[0].Day != "2026-03-11" || avail.records[0].EndTime != "12:00" {
		t.Errorf("record not updated in place: %+v", avail.records[0])
	}

	bad := models.UpdateAvailabilityRequest{Day: "2026-03-11", StartTime: "12:00", EndTime: "10:00"}
	if err := svc.UpdateRecord(context.Background(), "r1", "u1", bad); !IsValidation(err) {
		t.Fatalf("inverted times should be rejected, got %v", err)
	}
}

func TestDeleteRecordOwnerScoped(t *testing.T) {
	svc, avail := newTestService(testPlan())
	avail.records = []models.AvailabilityRecord{
		{ID: "r1", PlanID: "p1", UserID: "u1", Day: "2026-03-10", StartTime: "09:00", EndTime: "10:00"},
	}

	if err := svc.DeleteRecord(context.Background(), "r1", "u2"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another user, got %v", err)
	}
	if err := svc.DeleteRecord(context.Background(), "r1", "u1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(avail.records) != 0 {
		t.Errorf("record not deleted")
	}
	if err := svc.DeleteRecord(context.Background(), "r1", "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
