package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/opshub-dev/opshub/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var demoFirstNames = []string{
	"Olivia", "Liam", "Charlotte", "Noah", "Amelia", "Oliver", "Isla", "Jack",
	"Mia", "William", "Grace", "Henry", "Ava", "Thomas", "Chloe", "Lucas",
	"Sophie", "Ethan", "Ruby", "James",
}
var demoLastNames = []string{
	"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Johnson",
	"White", "Martin", "Anderson", "Thompson", "Nguyen", "Walker", "Harris",
	"Lee", "Ryan", "Robinson", "Kelly", "King", "Davis",
}

func GenerateRandomFullName() string {
	first := demoFirstNames[rand.Intn(len(demoFirstNames))]
	last := demoLastNames[rand.Intn(len(demoLastNames))]
	return first + " " + last
}

var roles = []domain.Role{
	domain.RoleStaff,
	domain.RoleStaff,
	domain.RoleAdmin, // staff twice as likely as admin
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	username := strings.Join(parts, ".")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@example.com",
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
