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

// seedBios/seedInterestSets/seedLocations give seeded profiles enough texture
// that the scoring engine produces non-trivial results in development.
var seedBios = []string{
	"Me encanta viajar y descubrir restaurantes nuevos. Busco una relación seria con alguien curioso.",
	"Fanático del deporte y la montaña. Persona tranquila, disfruto de la naturaleza y de cocinar.",
	"Creativa, amante del arte y la música. Siempre con un libro a mano y ganas de aprender.",
	"Trabajo en tecnología, organizado y con metas claras. Me gusta el gimnasio y el café de especialidad.",
	"Sociable y alegre, me encanta salir a bailar con amigos y conocer gente nueva.",
	"Amante de los animales y del senderismo. Busco compartir planes sencillos y mucha calma.",
	"Fotografía, conciertos y viajes improvisados. Abierto a lo que surja, sin prisa.",
	"Familiar y cariñosa, valoro el respeto y la empatía por encima de todo.",
}

var seedInterestSets = [][]string{
	{"viajes", "gastronomia", "arte"},
	{"deporte", "naturaleza", "cocinar"},
	{"arte", "musica", "lectura"},
	{"gimnasio", "cafe", "tecnologia"},
	{"bailar", "fiestas", "amigos"},
	{"senderismo", "mascotas", "camping"},
	{"fotografia", "conciertos", "viajes"},
	{"familia", "cine", "yoga"},
}

var seedLocations = []string{
	"Madrid, Centro", "Madrid, Chamberí", "Barcelona, Gràcia", "Barcelona, Eixample",
	"Valencia, Ruzafa", "Sevilla, Triana",
}

var seedLookingFor = []string{
	"una relación seria", "algo casual, sin compromiso", "amistad y conocer gente", "algo serio, quizá matrimonio",
}

// SeedTestData resets the database and populates it with demo users,
// profiles and decisions.
//
// Behavior:
//  1. Clears existing data.
//  2. Creates 20 users (10 male, 10 female) with hashed passwords and full
//     scoring profiles (bio, interests, location, intent).
//  3. Generates ~200 decisions with ~70% likes, guaranteeing mutual likes
//     every 3rd pair so match flows are testable.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(database *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, table := range []string{"decisions", "recommendations", "moderation_logs", "profiles", "users"} {
		if err := database.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch database.Dialector.Name() {
	case "mysql":
		database.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "sqlite":
		database.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	log.Println("Cleared existing data")

	for i := 1; i <= 20; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		gender, interestedIn := "male", "female"
		if i > 10 {
			gender, interestedIn = "female", "male"
		}

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Gender:       gender,
			Active:       true,
			LastLoginAt:  time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := database.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		prof := Profile{
			UserID:       user.ID,
			Age:          22 + r.Intn(20),
			Gender:       gender,
			InterestedIn: interestedIn,
			LookingFor:   seedLookingFor[i%len(seedLookingFor)],
			Bio:          seedBios[i%len(seedBios)],
			Interests:    seedInterestSets[i%len(seedInterestSets)],
			Location:     seedLocations[i%len(seedLocations)],
			PhotoCount:   1 + r.Intn(5),
		}
		if err := database.Create(&prof).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	log.Println("Seeded 20 users with profiles.")

	counter := 0
	for actorID := 1; actorID <= 20; actorID++ {
		for j := 0; j < 12; j++ {
			recipientID := uint64(r.Intn(20) + 1)
			if uint64(actorID) == recipientID {
				continue
			}

			var actor, recipient User
			if err := database.First(&actor, actorID).Error; err != nil {
				continue
			}
			if err := database.First(&recipient, recipientID).Error; err != nil {
				continue
			}
			if actor.Gender == recipient.Gender {
				continue
			}

			liked := r.Intn(100) < 70

			// guarantee mutual likes every 3rd pair
			if counter%3 == 0 {
				liked = true
				recip := Decision{ActorID: recipientID, RecipientID: uint64(actorID), Liked: true}
				database.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
					DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
				}).Create(&recip)
			}

			decision := Decision{ActorID: uint64(actorID), RecipientID: recipientID, Liked: liked}
			if err := database.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
			}).Create(&decision).Error; err != nil {
				return fmt.Errorf("failed to seed decision: %w", err)
			}

			counter++
		}
	}
	log.Printf("Seeded %d decisions.", counter)

	return nil
}
