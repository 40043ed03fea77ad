package services

import (
	"errors"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/models"
	"github.com/mahi-manish/pill-time/utils"
)

func RegisterUser(email, password, fullName, role string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if role != "caretaker" {
		role = "patient"
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Role:     role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	// Every account gets a profile row; alerting stays off until the
	// caretaker settings fill in caretaker_email and alert_delay.
	profile := models.Profile{
		UserID:         user.ID,
		FullName:       fullName,
		TimezoneOffset: DefaultTimezoneOffset,
	}
	return config.DB.Create(&profile).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
