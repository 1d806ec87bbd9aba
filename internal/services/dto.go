// Package services – response shapes
//
// This file defines the composed views the services return to the HTTP layer.
// Services never hand out raw persistence models for aggregates that span
// tables; they assemble these structs inside the owning transaction instead.
package services

// ExerciseSummary is a recovery exercise as embedded in another aggregate.
type ExerciseSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InjurySummary is an injury as embedded in another aggregate.
type InjurySummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BodyPart    string `json:"bodyPart"`
}

// InjuryInfo is a fully joined injury: scalars plus the linked exercises.
type InjuryInfo struct {
	ID                uint              `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	BodyPart          string            `json:"bodyPart"`
	RecoveryExercises []ExerciseSummary `json:"recoveryExercises"`
}

// ExerciseInfo is a fully joined exercise: scalars plus the linked injuries.
type ExerciseInfo struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Injuries    []InjurySummary `json:"injuries"`
}

// PlanExerciseInfo is one exercise assignment within a workout day.
// Sets, reps and duration (seconds) are absent when not prescribed.
type PlanExerciseInfo struct {
	RecoveryExerciseID uint   `json:"recoveryExerciseId"`
	Name               string `json:"name"`
	Sets               *int   `json:"sets"`
	Reps               *int   `json:"reps"`
	Duration           *int   `json:"duration"`
}

// WorkoutDayInfo is one day of a plan with its assignments.
type WorkoutDayInfo struct {
	DayNumber int                `json:"dayNumber"`
	Exercises []PlanExerciseInfo `json:"exercises"`
}

// PlanInfo is a composed recovery plan: scalars plus days ordered by number.
type PlanInfo struct {
	ID                uint             `json:"id"`
	Name              string           `json:"name"`
	AppUserID         string           `json:"appUserId"`
	IsCreatedByDoctor bool             `json:"isCreatedByDoctor"`
	DoctorID          *string          `json:"doctorId"`
	WorkoutDays       []WorkoutDayInfo `json:"workoutDays"`
}

// UserInjuryInfo is one of the caller's injuries with its linked exercises.
type UserInjuryInfo struct {
	InjuryID          uint              `json:"injuryId"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	BodyPart          string            `json:"bodyPart"`
	IsTooSevere       bool              `json:"isTooSevere"`
	RecoveryExercises []ExerciseSummary `json:"recoveryExercises"`
}

// AssignedInjury is the confirmation returned after assigning an injury to
// the caller.
type AssignedInjury struct {
	InjuryID    uint   `json:"injuryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsTooSevere bool   `json:"isTooSevere"`
}

// AuthResult is returned by the registration and login endpoints.
type AuthResult struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
