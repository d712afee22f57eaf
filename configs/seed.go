package configs

import (
	"log"

	"github.com/Ashitosh2004/hotellucky/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedStaff creates the admin and the two kitchen accounts on first boot.
// Accounts with missing env credentials are skipped, existing ones are left
// untouched.
func SeedStaff(cfg *Config) error {
	accounts := []struct {
		email, password, role string
	}{
		{cfg.AdminEmail, cfg.AdminPassword, entity.RoleAdmin},
		{cfg.SouthKitchenEmail, cfg.SouthKitchenPassword, entity.RoleSouthKitchen},
		{cfg.KolhapuriKitchenEmail, cfg.KolhapuriKitchenPassword, entity.RoleKolhapuriKitchen},
	}

	for _, a := range accounts {
		if a.email == "" || a.password == "" {
			log.Printf("skip seeding %s: missing credentials", a.role)
			continue
		}

		var count int64
		db.Model(&entity.User{}).Where("email = ?", a.email).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{Email: a.email, Password: string(hash), Role: a.role}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("seeded %s account: %s", a.role, a.email)
	}
	return nil
}
