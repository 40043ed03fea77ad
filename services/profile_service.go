package services

import (
	"errors"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/models"

	"gorm.io/gorm"
)

// GetProfile returns the user's alert profile, creating the default row
// if registration predates the profiles table.
func GetProfile(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = models.Profile{UserID: userID, TimezoneOffset: DefaultTimezoneOffset}
		if err := config.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type ProfileUpdate struct {
	FullName       *string
	CaretakerEmail *string
	AlertDelay     *string
	TimezoneOffset *string
}

// UpdateProfile applies the caretaker settings. An empty caretaker email
// or alert delay clears the field, which takes the patient out of the
// alert job's work list.
func UpdateProfile(userID uint, upd ProfileUpdate) (*models.Profile, error) {
	p, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	if upd.CaretakerEmail != nil {
		if *upd.CaretakerEmail == "" {
			p.CaretakerEmail = nil
		} else {
			p.CaretakerEmail = upd.CaretakerEmail
		}
	}
	if upd.AlertDelay != nil {
		if *upd.AlertDelay == "" {
			p.AlertDelay = nil
		} else {
			if _, err := DelayDuration(*upd.AlertDelay); err != nil {
				return nil, err
			}
			p.AlertDelay = upd.AlertDelay
		}
	}
	if upd.TimezoneOffset != nil {
		if _, err := LocationFor(*upd.TimezoneOffset); err != nil {
			return nil, err
		}
		p.TimezoneOffset = *upd.TimezoneOffset
	}

	if err := config.DB.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
