package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedInterests = []string{
	"hiking", "coffee", "cooking", "travel", "music", "films",
	"reading", "yoga", "running", "photography", "gaming", "art",
}

// SeedTestData resets the database and populates it with demo users and swipes.
//
// Behavior:
//  1. Clears existing data in all matching-core tables.
//  2. Creates 20 users (10 male, 10 female) with hashed passwords, birth
//     dates, locations scattered around a city center, and random interests.
//  3. Generates likes/passes with ~70% likes; every 3rd pair gets a
//     reciprocal like plus the resulting match row.
//
// Compatible with both MySQL and SQLite (AUTO_INCREMENT reset skipped for SQLite).
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"likes", "matches", "swipe_sessions", "blocks", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// Reset auto-increment sequences (only for MySQL)
	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
		db.Exec("ALTER TABLE blocks AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'blocks'")
	}

	log.Println("Cleared existing data")

	// --- Seed Users (10 male, 10 female) ---
	smokingValues := []Smoking{SmokingNever, SmokingNever, SmokingSometimes, SmokingRegularly}
	drinkingValues := []Drinking{DrinkingNever, DrinkingSocially, DrinkingSocially, DrinkingRegularly}
	kidsValues := []WantsKids{WantsKidsNo, WantsKidsOpen, WantsKidsSomeday, WantsKidsHasKids}
	lookingValues := []LookingFor{LookingForCasual, LookingForLongTerm, LookingForMarriage, LookingForUnsure}

	for i := 1; i <= 20; i++ {
		username := fmt.Sprintf("user%d", i)
		email := fmt.Sprintf("user%d@example.com", i)

		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		gender, interestedIn := "male", []string{"female"}
		if i > 10 {
			gender, interestedIn = "female", []string{"male"}
		}

		// 22-38 years old, scattered within ~30km of the city center
		birth := time.Now().UTC().AddDate(-(22 + r.Intn(17)), -r.Intn(12), 0)
		lat := 51.5074 + (r.Float64()-0.5)*0.5
		lon := -0.1278 + (r.Float64()-0.5)*0.5

		interests := make([]string, 0, 4)
		for _, idx := range r.Perm(len(seedInterests))[:3+r.Intn(2)] {
			interests = append(interests, seedInterests[idx])
		}

		user := User{
			Username:      username,
			Email:         email,
			PasswordHash:  string(hash),
			State:         UserStateActive,
			Gender:        gender,
			InterestedIn:  interestedIn,
			BirthDate:     &birth,
			Lat:           &lat,
			Lon:           &lon,
			MaxDistanceKm: 25 + r.Intn(50),
			MinAge:        20,
			MaxAge:        45,
			Smoking:       smokingValues[r.Intn(len(smokingValues))],
			Drinking:      drinkingValues[r.Intn(len(drinkingValues))],
			WantsKids:     kidsValues[r.Intn(len(kidsValues))],
			LookingFor:    lookingValues[r.Intn(len(lookingValues))],
			Interests:     interests,
		}

		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}
	log.Println("Seeded 20 users.")

	// --- Seed Likes (~200) ---
	counter := 0
	for actorID := uint64(1); actorID <= 20; actorID++ {
		for j := 0; j < 12; j++ { // each user swipes on ~12 others
			targetID := uint64(r.Intn(20) + 1)
			if actorID == targetID {
				continue
			}

			var actor, target User
			if err := db.First(&actor, actorID).Error; err != nil {
				continue
			}
			if err := db.First(&target, targetID).Error; err != nil {
				continue
			}
			if actor.Gender == target.Gender {
				continue
			}

			// like probability 70%
			direction := DirectionPass
			if r.Intn(100) < 70 {
				direction = DirectionLike
			}

			// guarantee mutual likes every 3rd pair
			if counter%3 == 0 {
				direction = DirectionLike
				recip := NewLike(targetID, actorID, DirectionLike)
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(recip)

				match := NewMatch(actorID, targetID)
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(match)
			}

			like := NewLike(actorID, targetID, direction)
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}

			counter++
		}
	}
	log.Printf("Seeded %d swipes.", counter)

	return nil
}
