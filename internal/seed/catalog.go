// Package seed loads the fixed rehabilitation catalog and optional demo
// accounts into an empty database at startup. This file holds the catalog
// data itself: 50 recovery exercises, 30 injuries, and the 60 links between
// them. The IDs are stable and referenced by clients, so new entries are
// appended, never renumbered.
package seed

import "github.com/avasilev/go-recovery-backend/internal/domain"

// Exercises is the built-in recovery exercise catalog.
var Exercises = []domain.RecoveryExercise{
	{ID: 1, Name: "Hamstring Stretch", Description: "A stretch to relieve tension in the hamstrings."},
	{ID: 2, Name: "Quadriceps Stretch", Description: "A stretch targeting the quadriceps muscles."},
	{ID: 3, Name: "Calf Raises", Description: "Strengthens the calf muscles and improves flexibility."},
	{ID: 4, Name: "Plantar Fascia Stretch", Description: "Stretching the plantar fascia to relieve foot pain."},
	{ID: 5, Name: "Ankle Proprioception Exercises", Description: "Exercises to improve ankle stability and proprioception."},
	{ID: 6, Name: "Shin Splint Relief", Description: "Targeted movements to alleviate shin splints."},
	{ID: 7, Name: "ACL Strengthening", Description: "Strengthening exercises for the anterior cruciate ligament."},
	{ID: 8, Name: "MCL Rehabilitation Stretch", Description: "Stretch targeting the medial collateral ligament."},
	{ID: 9, Name: "Shoulder Pendulum Exercises", Description: "Gentle swinging motion to improve shoulder mobility."},
	{ID: 10, Name: "Rotator Cuff Strengthening", Description: "Strength exercises for the rotator cuff muscles."},
	{ID: 11, Name: "Frozen Shoulder Stretch", Description: "Stretch to improve range of motion for frozen shoulder."},
	{ID: 12, Name: "Wrist Flexor Stretch", Description: "Stretch to reduce tension in the wrist flexor muscles."},
	{ID: 13, Name: "Groin Stretch", Description: "Relieves tension in the groin area."},
	{ID: 14, Name: "Patellar Tendon Exercises", Description: "Exercises to strengthen the patellar tendon."},
	{ID: 15, Name: "Dislocated Shoulder Recovery", Description: "Movements to regain shoulder stability."},
	{ID: 16, Name: "Hip Flexor Stretch", Description: "Stretch to reduce tension in the hip flexors."},
	{ID: 17, Name: "Neck Mobility Exercises", Description: "Exercises to improve neck flexibility."},
	{ID: 18, Name: "Ankle Dorsiflexion Strengthening", Description: "Exercises to strengthen the ankle's dorsiflexion movement."},
	{ID: 19, Name: "Achilles Tendon Stretch", Description: "Stretch to improve Achilles tendon flexibility."},
	{ID: 20, Name: "Lower Back Extension", Description: "Strengthens the lower back muscles."},
	{ID: 21, Name: "Glute Bridge", Description: "Strengthens glute muscles and reduces lower back pain."},
	{ID: 22, Name: "Hip Abduction Exercise", Description: "Targets the hip abductors to improve mobility."},
	{ID: 23, Name: "IT Band Foam Rolling", Description: "Relieves tension in the iliotibial band."},
	{ID: 24, Name: "Cervical Retraction", Description: "Improves neck posture and reduces pain."},
	{ID: 25, Name: "Knee Wall Slides", Description: "Strengthens the quadriceps while reducing knee strain."},
	{ID: 26, Name: "Toe Spreading", Description: "Strengthens the foot's intrinsic muscles."},
	{ID: 27, Name: "Tennis Elbow Isometric Holds", Description: "Builds strength in the elbow with minimal strain."},
	{ID: 28, Name: "Lat Stretch", Description: "Improves flexibility in the latissimus dorsi muscles."},
	{ID: 29, Name: "Side Plank", Description: "Strengthens the core and stabilizes the hip."},
	{ID: 30, Name: "Finger Flexion Strengthening", Description: "Targets finger muscles for improved grip strength."},
	{ID: 31, Name: "Seated Spinal Twist", Description: "Improves spinal flexibility and relieves tension."},
	{ID: 32, Name: "Heel Drops", Description: "Strengthens the calf and Achilles tendon."},
	{ID: 33, Name: "Scapular Retraction", Description: "Improves posture and shoulder strength."},
	{ID: 34, Name: "Core Stability Drills", Description: "Enhances core strength for better balance."},
	{ID: 35, Name: "Dynamic Wrist Rotations", Description: "Improves wrist flexibility and strength."},
	{ID: 36, Name: "Shoulder Blade Squeeze", Description: "Improves upper back posture and relieves tension."},
	{ID: 37, Name: "Cat-Cow Stretch", Description: "Promotes spinal flexibility and relieves back tension."},
	{ID: 38, Name: "Hip Flexor Activation", Description: "Strengthens hip flexors through controlled movements."},
	{ID: 39, Name: "Pectoral Stretch", Description: "Relieves tightness in the chest muscles."},
	{ID: 40, Name: "Bridge with Resistance Band", Description: "Enhances glute strength and hip stability."},
	{ID: 41, Name: "Wrist Extensor Stretch", Description: "Stretches the extensors in the wrist for flexibility."},
	{ID: 42, Name: "Side-Lying Clamshells", Description: "Strengthens the hip abductors and improves balance."},
	{ID: 43, Name: "Wall Angels", Description: "Improves shoulder mobility and posture."},
	{ID: 44, Name: "Child's Pose", Description: "Relieves lower back and hip tension."},
	{ID: 45, Name: "Triceps Stretch", Description: "Stretches the triceps for better flexibility."},
	{ID: 46, Name: "Scapular Push-ups", Description: "Strengthens the scapular stabilizers."},
	{ID: 47, Name: "Ankle Inversion/Eversion", Description: "Enhances lateral ankle stability."},
	{ID: 48, Name: "Hamstring Foam Rolling", Description: "Releases tension in the hamstrings."},
	{ID: 49, Name: "Forearm Pronation/Supination", Description: "Improves wrist and forearm flexibility."},
	{ID: 50, Name: "Bird Dog Exercise", Description: "Strengthens core and improves spinal stability."},
}

// Injuries is the built-in injury catalog.
var Injuries = []domain.Injury{
	{ID: 1, Name: "Hamstring Strain", Description: "Hamstring Strain.", BodyPart: "Leg"},
	{ID: 2, Name: "Quadriceps Strain", Description: "Quadriceps Strain.", BodyPart: "Leg"},
	{ID: 3, Name: "Calf Strain", Description: "Calf Strain.", BodyPart: "Leg"},
	{ID: 4, Name: "Plantar Fasciitis", Description: "Inflammation of the plantar fascia.", BodyPart: "Foot"},
	{ID: 5, Name: "Sprained Ankle", Description: "Ligament injury in the ankle.", BodyPart: "Ankle"},
	{ID: 6, Name: "Shin Splints", Description: "Pain along the shin bone due to overuse.", BodyPart: "Leg"},
	{ID: 7, Name: "ACL Sprain", Description: "Anterior cruciate ligament injury.", BodyPart: "Knee"},
	{ID: 8, Name: "MCL Sprain", Description: "Medial collateral ligament sprain.", BodyPart: "Knee"},
	{ID: 9, Name: "Frozen Shoulder", Description: "Stiffness and pain in the shoulder joint.", BodyPart: "Shoulder"},
	{ID: 10, Name: "Rotator Cuff Tear", Description: "Injury to the rotator cuff muscles or tendons.", BodyPart: "Shoulder"},
	{ID: 11, Name: "Dislocated Shoulder", Description: "Shoulder joint displacement.", BodyPart: "Shoulder"},
	{ID: 12, Name: "Tennis Elbow", Description: "Overuse injury of the elbow.", BodyPart: "Elbow"},
	{ID: 13, Name: "Groin Strain", Description: "Strain in the groin muscles.", BodyPart: "Groin"},
	{ID: 14, Name: "Patellar Tendonitis", Description: "Inflammation of the patellar tendon.", BodyPart: "Knee"},
	{ID: 15, Name: "Achilles Tendonitis", Description: "Inflammation of the Achilles tendon.", BodyPart: "Leg"},
	{ID: 16, Name: "IT Band Syndrome", Description: "Tightness in the iliotibial band causing knee pain.", BodyPart: "Leg"},
	{ID: 17, Name: "Hip Flexor Strain", Description: "Injury to the hip flexor muscles.", BodyPart: "Hip"},
	{ID: 18, Name: "Lower Back Pain", Description: "Chronic or acute pain in the lower back.", BodyPart: "Back"},
	{ID: 19, Name: "Neck Strain", Description: "Injury to the neck muscles.", BodyPart: "Neck"},
	{ID: 20, Name: "Finger Tendonitis", Description: "Inflammation of the finger tendons.", BodyPart: "Hand"},
	{ID: 21, Name: "Scapular Dyskinesis", Description: "Improper movement of the shoulder blade.", BodyPart: "Shoulder"},
	{ID: 22, Name: "Bicep Tendonitis", Description: "Inflammation of the bicep tendon.", BodyPart: "Arm"},
	{ID: 23, Name: "Pectoral Strain", Description: "Strain in the chest muscles.", BodyPart: "Chest"},
	{ID: 24, Name: "Thoracic Outlet Syndrome", Description: "Compression in the upper chest area.", BodyPart: "Chest"},
	{ID: 25, Name: "Sciatica", Description: "Pain radiating along the sciatic nerve.", BodyPart: "Lower Back"},
	{ID: 26, Name: "Hip Labral Tear", Description: "Tear in the labrum of the hip joint.", BodyPart: "Hip"},
	{ID: 27, Name: "Cubital Tunnel Syndrome", Description: "Nerve compression in the elbow.", BodyPart: "Arm"},
	{ID: 28, Name: "Plantar Plate Injury", Description: "Damage to the ligament under the toe.", BodyPart: "Foot"},
	{ID: 29, Name: "Facet Joint Syndrome", Description: "Pain from the joints of the spine.", BodyPart: "Spine"},
	{ID: 30, Name: "Tight Hip Flexors", Description: "Limited flexibility in the hip flexor muscles.", BodyPart: "Hip"},
}

// Links pairs each injury with its recommended exercises.
var Links = []domain.InjuryRecoveryExercise{
	{InjuryID: 1, RecoveryExerciseID: 1},
	{InjuryID: 1, RecoveryExerciseID: 13},
	{InjuryID: 2, RecoveryExerciseID: 2},
	{InjuryID: 2, RecoveryExerciseID: 14},
	{InjuryID: 3, RecoveryExerciseID: 3},
	{InjuryID: 3, RecoveryExerciseID: 32},
	{InjuryID: 4, RecoveryExerciseID: 4},
	{InjuryID: 4, RecoveryExerciseID: 26},
	{InjuryID: 5, RecoveryExerciseID: 5},
	{InjuryID: 5, RecoveryExerciseID: 18},
	{InjuryID: 6, RecoveryExerciseID: 6},
	{InjuryID: 6, RecoveryExerciseID: 21},
	{InjuryID: 7, RecoveryExerciseID: 7},
	{InjuryID: 7, RecoveryExerciseID: 25},
	{InjuryID: 8, RecoveryExerciseID: 8},
	{InjuryID: 8, RecoveryExerciseID: 14},
	{InjuryID: 9, RecoveryExerciseID: 11},
	{InjuryID: 9, RecoveryExerciseID: 9},
	{InjuryID: 10, RecoveryExerciseID: 10},
	{InjuryID: 10, RecoveryExerciseID: 33},
	{InjuryID: 11, RecoveryExerciseID: 15},
	{InjuryID: 11, RecoveryExerciseID: 9},
	{InjuryID: 12, RecoveryExerciseID: 27},
	{InjuryID: 12, RecoveryExerciseID: 12},
	{InjuryID: 13, RecoveryExerciseID: 13},
	{InjuryID: 13, RecoveryExerciseID: 16},
	{InjuryID: 14, RecoveryExerciseID: 14},
	{InjuryID: 14, RecoveryExerciseID: 25},
	{InjuryID: 15, RecoveryExerciseID: 19},
	{InjuryID: 15, RecoveryExerciseID: 32},
	{InjuryID: 16, RecoveryExerciseID: 23},
	{InjuryID: 16, RecoveryExerciseID: 22},
	{InjuryID: 17, RecoveryExerciseID: 16},
	{InjuryID: 17, RecoveryExerciseID: 22},
	{InjuryID: 18, RecoveryExerciseID: 20},
	{InjuryID: 18, RecoveryExerciseID: 21},
	{InjuryID: 19, RecoveryExerciseID: 17},
	{InjuryID: 19, RecoveryExerciseID: 24},
	{InjuryID: 20, RecoveryExerciseID: 30},
	{InjuryID: 20, RecoveryExerciseID: 35},
	{InjuryID: 21, RecoveryExerciseID: 46},
	{InjuryID: 21, RecoveryExerciseID: 43},
	{InjuryID: 22, RecoveryExerciseID: 45},
	{InjuryID: 22, RecoveryExerciseID: 39},
	{InjuryID: 23, RecoveryExerciseID: 39},
	{InjuryID: 23, RecoveryExerciseID: 36},
	{InjuryID: 24, RecoveryExerciseID: 43},
	{InjuryID: 24, RecoveryExerciseID: 36},
	{InjuryID: 25, RecoveryExerciseID: 44},
	{InjuryID: 25, RecoveryExerciseID: 50},
	{InjuryID: 26, RecoveryExerciseID: 40},
	{InjuryID: 26, RecoveryExerciseID: 42},
	{InjuryID: 27, RecoveryExerciseID: 49},
	{InjuryID: 27, RecoveryExerciseID: 41},
	{InjuryID: 28, RecoveryExerciseID: 26},
	{InjuryID: 28, RecoveryExerciseID: 4},
	{InjuryID: 29, RecoveryExerciseID: 37},
	{InjuryID: 29, RecoveryExerciseID: 50},
	{InjuryID: 30, RecoveryExerciseID: 16},
	{InjuryID: 30, RecoveryExerciseID: 38},
}
