package domain

import "time"

type User struct {
	ID             int        `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	HashedPassword string     `json:"-" db:"hashed_password"`
	BirthDate      time.Time  `json:"birth_date" db:"birth_date"`
	Bio            *string    `json:"bio" db:"bio"`
	ImageFilename  *string    `json:"image_filename" db:"image_filename"`
	ZodiacSignID   *int       `json:"zodiac_sign_id" db:"zodiac_sign_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// Age returns the user's age in full years as of now.
func (u *User) Age() int {
	return AgeAt(u.BirthDate, time.Now())
}

// AgeAt returns the number of full years between birthDate and ref.
func AgeAt(birthDate, ref time.Time) int {
	age := ref.Year() - birthDate.Year()
	if ref.Month() < birthDate.Month() ||
		(ref.Month() == birthDate.Month() && ref.Day() < birthDate.Day()) {
		age--
	}
	return age
}
