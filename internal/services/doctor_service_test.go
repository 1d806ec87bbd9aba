package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

func newDoctorSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:doctorsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(
		&domain.AppUser{},
		&domain.Injury{},
		&domain.RecoveryExercise{},
		&domain.UserInjury{},
		&domain.RecoveryPlan{},
		&domain.WorkoutDay{},
		&domain.RecoveryPlanExercise{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedPatientLink creates a user, an injury, and the (user, injury) link.
func seedPatientLink(t *testing.T, db *gorm.DB, userID string, injuryID uint, severe bool, doctorID *string) {
	t.Helper()
	user := &domain.AppUser{ID: userID, Username: "user-" + userID, Email: userID + "@x.io", PasswordHash: "h", Role: domain.RoleUser}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	inj := &domain.Injury{ID: injuryID, Name: fmt.Sprintf("injury-%d", injuryID), Description: "d", BodyPart: "Back"}
	if err := db.Create(inj).Error; err != nil {
		t.Fatalf("seed injury: %v", err)
	}
	link := &domain.UserInjury{AppUserID: userID, InjuryID: injuryID, IsTooSevere: severe, DoctorID: doctorID}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}
}

func TestDoctor_SeverePatients_EmptyIsNotFound(t *testing.T) {
	db := newDoctorSvcDB(t)
	svc := &DoctorService{DB: db}

	_, err := svc.SeverePatients(context.Background())
	if !errors.Is(err, ErrNoPatients) {
		t.Fatalf("expected ErrNoPatients, got %v", err)
	}
}

func TestDoctor_PatientListings(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, nil)  // severe, unassigned
	seedPatientLink(t, db, "u2", 2, true, &doc) // severe, claimed by doc-1
	seedPatientLink(t, db, "u3", 3, false, nil) // not severe

	svc := &DoctorService{DB: db}
	ctx := context.Background()

	severe, err := svc.SeverePatients(ctx)
	if err != nil {
		t.Fatalf("SeverePatients: %v", err)
	}
	if len(severe) != 2 {
		t.Fatalf("expected 2 severe rows, got %d", len(severe))
	}

	avail, err := svc.AvailablePatients(ctx)
	if err != nil {
		t.Fatalf("AvailablePatients: %v", err)
	}
	if len(avail) != 1 || avail[0].AppUserID != "u1" {
		t.Fatalf("expected only u1 available, got %+v", avail)
	}

	mine, err := svc.MyPatients(ctx, doc)
	if err != nil {
		t.Fatalf("MyPatients: %v", err)
	}
	if len(mine) != 1 || mine[0].AppUserID != "u2" {
		t.Fatalf("expected only u2 assigned, got %+v", mine)
	}
}

func TestDoctor_AssignSelf(t *testing.T) {
	db := newDoctorSvcDB(t)
	seedPatientLink(t, db, "u1", 1, true, nil)
	svc := &DoctorService{DB: db}
	ctx := context.Background()

	if err := svc.AssignSelf(ctx, "doc-1", "u1", 1); err != nil {
		t.Fatalf("AssignSelf: %v", err)
	}
	var link domain.UserInjury
	if err := db.Where("app_user_id = ? AND injury_id = ?", "u1", 1).First(&link).Error; err != nil {
		t.Fatalf("load link: %v", err)
	}
	if link.DoctorID == nil || *link.DoctorID != "doc-1" {
		t.Fatalf("expected doctor claimed, got %+v", link)
	}

	// Last write wins on a second claim.
	if err := svc.AssignSelf(ctx, "doc-2", "u1", 1); err != nil {
		t.Fatalf("second AssignSelf: %v", err)
	}
	if err := db.Where("app_user_id = ? AND injury_id = ?", "u1", 1).First(&link).Error; err != nil {
		t.Fatalf("reload link: %v", err)
	}
	if link.DoctorID == nil || *link.DoctorID != "doc-2" {
		t.Fatalf("expected reassignment to doc-2, got %+v", link)
	}
}

func TestDoctor_AssignSelf_Sentinels(t *testing.T) {
	db := newDoctorSvcDB(t)
	seedPatientLink(t, db, "u1", 1, false, nil)
	svc := &DoctorService{DB: db}
	ctx := context.Background()

	if err := svc.AssignSelf(ctx, "doc-1", "missing", 1); !errors.Is(err, ErrUserInjuryNotFound) {
		t.Fatalf("expected ErrUserInjuryNotFound, got %v", err)
	}
	if err := svc.AssignSelf(ctx, "doc-1", "u1", 1); !errors.Is(err, ErrNotSevere) {
		t.Fatalf("expected ErrNotSevere, got %v", err)
	}
}

func TestDoctor_UnassignSelf(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, &doc)
	svc := &DoctorService{DB: db}
	ctx := context.Background()

	// Not the assigned doctor
	if err := svc.UnassignSelf(ctx, "doc-2", "u1", 1); !errors.Is(err, ErrNotAssignedDoctor) {
		t.Fatalf("expected ErrNotAssignedDoctor, got %v", err)
	}

	if err := svc.UnassignSelf(ctx, doc, "u1", 1); err != nil {
		t.Fatalf("UnassignSelf: %v", err)
	}
	var link domain.UserInjury
	if err := db.Where("app_user_id = ? AND injury_id = ?", "u1", 1).First(&link).Error; err != nil {
		t.Fatalf("load link: %v", err)
	}
	if link.DoctorID != nil {
		t.Fatalf("expected doctor cleared, got %v", *link.DoctorID)
	}

	// Releasing an unclaimed link is also rejected.
	if err := svc.UnassignSelf(ctx, doc, "u1", 1); !errors.Is(err, ErrNotAssignedDoctor) {
		t.Fatalf("expected ErrNotAssignedDoctor on unclaimed link, got %v", err)
	}
}

func planInputFor(userID string) PlanInput {
	return PlanInput{
		AppUserID: userID,
		Name:      "Rehab plan",
		WorkoutDays: []WorkoutDayInput{
			{DayNumber: 1, Exercises: []PlanExerciseInput{
				{RecoveryExerciseID: 3, Sets: intp(3), Reps: intp(10)},
			}},
			{DayNumber: 2, Exercises: []PlanExerciseInput{
				{RecoveryExerciseID: 4, Duration: intp(120)},
			}},
		},
	}
}

func TestDoctor_CreatePlan_RequiresLink(t *testing.T) {
	db := newDoctorSvcDB(t)
	seedPatientLink(t, db, "u1", 1, true, nil) // link exists, but to no doctor
	svc := &DoctorService{DB: db}

	_, err := svc.CreatePlan(context.Background(), "doc-1", planInputFor("u1"))
	if !errors.Is(err, ErrDoctorNotLinked) {
		t.Fatalf("expected ErrDoctorNotLinked, got %v", err)
	}
}

func TestDoctor_CreatePlan_Success(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, &doc)
	for _, id := range []uint{3, 4} {
		if err := db.Create(&domain.RecoveryExercise{ID: id, Name: fmt.Sprintf("ex-%d", id), Description: "d"}).Error; err != nil {
			t.Fatalf("seed exercise: %v", err)
		}
	}

	svc := &DoctorService{DB: db}
	got, err := svc.CreatePlan(context.Background(), doc, planInputFor("u1"))
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if !got.IsCreatedByDoctor || got.DoctorID == nil || *got.DoctorID != doc {
		t.Fatalf("expected doctor-authored plan, got %+v", got)
	}
	if len(got.WorkoutDays) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got.WorkoutDays))
	}
	if got.WorkoutDays[0].DayNumber != 1 || got.WorkoutDays[1].DayNumber != 2 {
		t.Fatalf("expected days ordered by number, got %+v", got.WorkoutDays)
	}
}

func TestDoctor_CreatePlan_ValidationOrder(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, &doc)
	svc := &DoctorService{DB: db}
	ctx := context.Background()

	// Empty name
	in := planInputFor("u1")
	in.Name = "   "
	if _, err := svc.CreatePlan(ctx, doc, in); !errors.Is(err, ErrPlanName) {
		t.Fatalf("expected ErrPlanName, got %v", err)
	}

	// No days
	in = planInputFor("u1")
	in.WorkoutDays = nil
	if _, err := svc.CreatePlan(ctx, doc, in); !errors.Is(err, ErrNoWorkoutDays) {
		t.Fatalf("expected ErrNoWorkoutDays, got %v", err)
	}

	// Negative sets
	in = planInputFor("u1")
	in.WorkoutDays[0].Exercises[0].Sets = intp(-1)
	if _, err := svc.CreatePlan(ctx, doc, in); !errors.Is(err, ErrInvalidSetsReps) {
		t.Fatalf("expected ErrInvalidSetsReps, got %v", err)
	}

	// Negative duration
	in = planInputFor("u1")
	in.WorkoutDays[1].Exercises[0].Duration = intp(-30)
	if _, err := svc.CreatePlan(ctx, doc, in); !errors.Is(err, ErrInvalidSetsReps) {
		t.Fatalf("expected ErrInvalidSetsReps for negative duration, got %v", err)
	}

	// Unknown exercise IDs, reported together
	in = planInputFor("u1")
	_, err := svc.CreatePlan(ctx, doc, in) // exercises 3 and 4 not seeded here
	var bad *InvalidIDsError
	if !errors.As(err, &bad) {
		t.Fatalf("expected InvalidIDsError, got %v", err)
	}
	if len(bad.IDs) != 2 {
		t.Fatalf("expected both missing ids reported, got %v", bad.IDs)
	}

	// Nothing persisted on rejection
	var plans int64
	db.Model(&domain.RecoveryPlan{}).Count(&plans)
	if plans != 0 {
		t.Fatalf("expected no plans persisted, got %d", plans)
	}
}

func TestDoctor_CreatePlan_ZeroExerciseIDIsInvalid(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, &doc)
	if err := db.Create(&domain.RecoveryExercise{ID: 3, Name: "ex-3", Description: "d"}).Error; err != nil {
		t.Fatalf("seed exercise: %v", err)
	}
	svc := &DoctorService{DB: db}

	in := PlanInput{
		AppUserID: "u1",
		Name:      "Rehab plan",
		WorkoutDays: []WorkoutDayInput{
			{DayNumber: 1, Exercises: []PlanExerciseInput{
				{RecoveryExerciseID: 3, Sets: intp(3)},
				{RecoveryExerciseID: 0},
			}},
		},
	}
	_, err := svc.CreatePlan(context.Background(), doc, in)
	var bad *InvalidIDsError
	if !errors.As(err, &bad) {
		t.Fatalf("expected InvalidIDsError, got %v", err)
	}
	if bad.Field != "recoveryExerciseIds" || len(bad.IDs) != 1 || bad.IDs[0] != 0 {
		t.Fatalf("expected id 0 reported as invalid, got %+v", bad)
	}

	var plans int64
	db.Model(&domain.RecoveryPlan{}).Count(&plans)
	if plans != 0 {
		t.Fatalf("expected no plans persisted, got %d", plans)
	}
}

func TestDoctor_CreatePlan_RejectsDuplicateDaysAndExercises(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, &doc)
	for _, id := range []uint{3, 4} {
		if err := db.Create(&domain.RecoveryExercise{ID: id, Name: fmt.Sprintf("ex-%d", id), Description: "d"}).Error; err != nil {
			t.Fatalf("seed exercise: %v", err)
		}
	}
	svc := &DoctorService{DB: db}
	ctx := context.Background()

	// Two days sharing a number never reach the per-plan unique index.
	in := PlanInput{
		AppUserID: "u1",
		Name:      "Rehab plan",
		WorkoutDays: []WorkoutDayInput{
			{DayNumber: 1, Exercises: []PlanExerciseInput{{RecoveryExerciseID: 3}}},
			{DayNumber: 1, Exercises: []PlanExerciseInput{{RecoveryExerciseID: 4}}},
		},
	}
	_, err := svc.CreatePlan(ctx, doc, in)
	var bad *InvalidIDsError
	if !errors.As(err, &bad) {
		t.Fatalf("expected InvalidIDsError, got %v", err)
	}
	if bad.Field != "dayNumbers" || len(bad.IDs) != 1 || bad.IDs[0] != 1 {
		t.Fatalf("expected repeated day 1 reported, got %+v", bad)
	}

	// The same exercise twice on one day would die on the composite key.
	in = PlanInput{
		AppUserID: "u1",
		Name:      "Rehab plan",
		WorkoutDays: []WorkoutDayInput{
			{DayNumber: 1, Exercises: []PlanExerciseInput{
				{RecoveryExerciseID: 3, Sets: intp(3)},
				{RecoveryExerciseID: 3, Sets: intp(5)},
			}},
		},
	}
	_, err = svc.CreatePlan(ctx, doc, in)
	if !errors.As(err, &bad) {
		t.Fatalf("expected InvalidIDsError, got %v", err)
	}
	if bad.Field != "duplicateRecoveryExerciseIds" || len(bad.IDs) != 1 || bad.IDs[0] != 3 {
		t.Fatalf("expected duplicate exercise reported, got %+v", bad)
	}

	var plans int64
	db.Model(&domain.RecoveryPlan{}).Count(&plans)
	if plans != 0 {
		t.Fatalf("expected no plans persisted, got %d", plans)
	}
}

func TestDoctor_UpdatePlan_RebuildsTree(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, &doc)
	for _, id := range []uint{3, 4, 5} {
		if err := db.Create(&domain.RecoveryExercise{ID: id, Name: fmt.Sprintf("ex-%d", id), Description: "d"}).Error; err != nil {
			t.Fatalf("seed exercise: %v", err)
		}
	}

	svc := &DoctorService{DB: db}
	ctx := context.Background()

	created, err := svc.CreatePlan(ctx, doc, planInputFor("u1"))
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	in := PlanInput{
		AppUserID: "u1",
		Name:      "Rehab plan v2",
		WorkoutDays: []WorkoutDayInput{
			{DayNumber: 7, Exercises: []PlanExerciseInput{{RecoveryExerciseID: 5}}},
		},
	}
	got, err := svc.UpdatePlan(ctx, doc, created.ID, in)
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if got.Name != "Rehab plan v2" {
		t.Fatalf("expected renamed plan, got %q", got.Name)
	}
	if len(got.WorkoutDays) != 1 || got.WorkoutDays[0].DayNumber != 7 {
		t.Fatalf("expected rebuilt tree with single day 7, got %+v", got.WorkoutDays)
	}

	// A rejected update leaves the previous tree intact.
	in.WorkoutDays[0].Exercises[0].RecoveryExerciseID = 9999
	if _, err := svc.UpdatePlan(ctx, doc, created.ID, in); err == nil {
		t.Fatalf("expected rejection for unknown exercise")
	}
	reloaded, err := svc.GetPlan(ctx, doc, created.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if len(reloaded.WorkoutDays) != 1 || reloaded.WorkoutDays[0].Exercises[0].RecoveryExerciseID != 5 {
		t.Fatalf("expected previous tree preserved, got %+v", reloaded.WorkoutDays)
	}
}

func TestDoctor_PlanScoping(t *testing.T) {
	db := newDoctorSvcDB(t)
	doc := "doc-1"
	seedPatientLink(t, db, "u1", 1, true, &doc)
	if err := db.Create(&domain.RecoveryExercise{ID: 3, Name: "ex-3", Description: "d"}).Error; err != nil {
		t.Fatalf("seed exercise: %v", err)
	}

	svc := &DoctorService{DB: db}
	ctx := context.Background()

	in := PlanInput{
		AppUserID:   "u1",
		Name:        "Rehab plan",
		WorkoutDays: []WorkoutDayInput{{DayNumber: 1, Exercises: []PlanExerciseInput{{RecoveryExerciseID: 3}}}},
	}
	created, err := svc.CreatePlan(ctx, doc, in)
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	// Another doctor cannot see or delete it.
	if _, err := svc.GetPlan(ctx, "doc-2", created.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound for foreign doctor, got %v", err)
	}
	if err := svc.DeletePlan(ctx, "doc-2", created.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound on foreign delete, got %v", err)
	}

	if err := svc.DeletePlan(ctx, doc, created.ID); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	var plans int64
	db.Model(&domain.RecoveryPlan{}).Count(&plans)
	if plans != 0 {
		t.Fatalf("expected plan removed, got %d", plans)
	}
}
