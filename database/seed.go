package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Username string
	Password string
	Role     models.Role
}

var defaultUsers = []seedUser{
	{Username: "admin", Password: "adminpass", Role: models.RoleAdmin},
	{Username: "operator", Password: "operatorpass", Role: models.RoleOperator},
	{Username: "customer", Password: "customerpass", Role: models.RoleCustomer},
}

// SeedDefaultUsers creates each fixed account whose username is missing.
// Calling it any number of times leaves exactly one row per account.
func SeedDefaultUsers(db *gorm.DB) error {
	ctx := context.Background()
	users := repository.NewUserRepository(db)

	for _, su := range defaultUsers {
		_, err := users.FindByUsername(ctx, su.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("lookup seed user %s: %w", su.Username, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Username:     su.Username,
			PasswordHash: string(hashed),
			Role:         su.Role,
		}
		if err := users.Create(ctx, &user); err != nil {
			// a concurrent seeder may have won the race on the unique index
			if _, lookupErr := users.FindByUsername(ctx, su.Username); lookupErr == nil {
				continue
			}
			return fmt.Errorf("create seed user %s: %w", su.Username, err)
		}
		utils.InfoLogger.WithField("username", su.Username).Info("Seed user created")
	}
	return nil
}
