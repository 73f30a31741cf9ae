package auth

import (
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) GetAdminByEmail(email string) (*AdminUser, error) {
	var admin AdminUser
	result := s.DB.Where("email = ?", email).First(&admin)
	if result.Error != nil {
		return nil, result.Error
	}
	return &admin, nil
}

func (s *AuthService) GetAdminByID(id uint) (*AdminUser, error) {
	var admin AdminUser
	result := s.DB.Where("id = ?", id).First(&admin)
	if result.Error != nil {
		return nil, result.Error
	}
	return &admin, nil
}
